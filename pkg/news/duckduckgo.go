package news

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"curvewatch/internal/model"
)

const (
	searchQuery   = "US Treasury Yields News"
	defaultSearch = "https://html.duckduckgo.com/html/"
)

// DuckDuckGoClient scrapes the DuckDuckGo HTML endpoint for headlines
// from the past day.
type DuckDuckGoClient struct {
	searchURL  string
	httpClient *http.Client
}

func NewDuckDuckGoClient() *DuckDuckGoClient {
	return &DuckDuckGoClient{
		searchURL:  defaultSearch,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *DuckDuckGoClient) Name() string {
	return "DuckDuckGo"
}

func (c *DuckDuckGoClient) Fetch(limit int) ([]model.NewsItem, error) {
	q := url.Values{}
	q.Set("q", searchQuery)
	q.Set("df", "d") // past day
	q.Set("kp", "1") // moderate safe search

	req, err := http.NewRequest(http.MethodGet, c.searchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("news search request: %w", err)
	}
	req.Header.Set("User-Agent", "curvewatch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news search: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news search parse: %w", err)
	}

	var items []model.NewsItem
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a")
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		target := resolveRedirect(href)
		if title == "" || target == "" {
			return true
		}

		items = append(items, model.NewsItem{
			Title:       title,
			URL:         target,
			Description: strings.TrimSpace(sel.Find("a.result__snippet").Text()),
			Source:      hostname(target),
		})
		return len(items) < limit
	})

	return items, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links back
// to the article URL.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(u.Host, "www.")
}
