package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient - генерация через Messages API. Эмбеддингов провайдер не дает.
type AnthropicClient struct {
	api   *anthropic.Client
	model anthropic.Model
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		api:   &client,
		model: anthropic.Model(model),
	}
}

// GenerateJSON передает схему в системном промпте, так как режима строгого JSON у API нет
func (c *AnthropicClient) GenerateJSON(ctx context.Context, req Request) ([]byte, error) {
	system, err := anthropicSystemPrompt(req)
	if err != nil {
		return nil, err
	}

	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(req.Images)+1)
	for _, img := range req.Images {
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MIMEType, base64.StdEncoding.EncodeToString(img.Data)))
	}
	blocks = append(blocks, anthropic.NewTextBlock(req.Prompt))

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API call: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	text = stripFences(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	return []byte(text), nil
}

func anthropicSystemPrompt(req Request) (string, error) {
	var sb strings.Builder
	if req.System != "" {
		sb.WriteString(req.System)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Return valid JSON only, no markdown fencing or explanation.")
	if req.Schema != nil {
		schema, err := json.Marshal(req.Schema)
		if err != nil {
			return "", fmt.Errorf("marshal response schema: %w", err)
		}
		sb.WriteString(" The JSON must match this schema:\n")
		sb.Write(schema)
	}
	return sb.String(), nil
}
