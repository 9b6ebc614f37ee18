package news

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const resultHTML = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.reuters.com%2Fyields-climb">Treasury Yields Climb</a>
  <a class="result__snippet">Yields rose across maturities on Monday.</a>
</div>
<div class="result">
  <a class="result__a" href="https://www.bloomberg.com/bond-rally">Bond Rally Stalls</a>
  <a class="result__snippet">The rally paused ahead of the auction.</a>
</div>
<div class="result">
  <a class="result__a" href="https://ft.com/curve-watch">Curve Watch</a>
</div>
</body></html>`

func newTestSearchClient(srv *httptest.Server) *DuckDuckGoClient {
	return &DuckDuckGoClient{
		searchURL:  srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestDuckDuckGoFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "US Treasury Yields News", r.URL.Query().Get("q"))
		assert.Equal(t, "d", r.URL.Query().Get("df"))
		io.WriteString(w, resultHTML)
	}))
	defer srv.Close()

	items, err := newTestSearchClient(srv).Fetch(5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(items))

	assert.Equal(t, "Treasury Yields Climb", items[0].Title)
	assert.Equal(t, "https://www.reuters.com/yields-climb", items[0].URL)
	assert.Equal(t, "reuters.com", items[0].Source)
	assert.Equal(t, "Yields rose across maturities on Monday.", items[0].Description)

	assert.Equal(t, "bloomberg.com", items[1].Source)
	assert.Equal(t, "ft.com", items[2].Source)
}

func TestDuckDuckGoFetchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, resultHTML)
	}))
	defer srv.Close()

	items, err := newTestSearchClient(srv).Fetch(1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
}

func TestDuckDuckGoFetchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer srv.Close()

	items, err := newTestSearchClient(srv).Fetch(5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(items))
}

func TestResolveRedirect(t *testing.T) {
	assert.Equal(t,
		"https://www.reuters.com/yields-climb",
		resolveRedirect("//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.reuters.com%2Fyields-climb"))
	assert.Equal(t, "https://example.com/direct", resolveRedirect("https://example.com/direct"))
	assert.Equal(t, "", resolveRedirect(""))
}
