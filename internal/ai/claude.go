package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const claudeMaxTokens = 300

// ClaudeProvider answers prompts through the Anthropic messages API with a
// single user turn.
type ClaudeProvider struct {
	chatModel model.BaseChatModel
}

// NewClaudeProvider builds a provider backed by the given Anthropic model.
// baseURL may be empty to use the default API endpoint.
func NewClaudeProvider(ctx context.Context, apiKey, modelName, baseURL string) (*ClaudeProvider, error) {
	var baseURLPtr *string
	if baseURL != "" {
		baseURLPtr = &baseURL
	}
	chatModel, err := claude.NewChatModel(ctx, &claude.Config{
		APIKey:    apiKey,
		Model:     modelName,
		BaseURL:   baseURLPtr,
		MaxTokens: claudeMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("init claude chat model: %w", err)
	}
	return &ClaudeProvider{chatModel: chatModel}, nil
}

func (p *ClaudeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := p.chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("claude completion: %w", err)
	}
	if out == nil || out.Content == "" {
		return FallbackReply, nil
	}
	return out.Content, nil
}
