package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"curvewatch/internal/model"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey, modelID string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	m := openai.ChatModelGPT4oMini
	if modelID != "" {
		m = openai.ChatModel(modelID)
	}
	return &OpenAIClient{
		client:    &client,
		model:     m,
		modelName: string(m),
	}
}

func (c *OpenAIClient) ModelName() string {
	return c.modelName
}

func (c *OpenAIClient) Summarize(snapshot *model.CurveSnapshot, news []model.NewsItem) (*model.AISummary, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(snapshot, news)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	parsed, err := parseSummary(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	return finalize(parsed, snapshot), nil
}
