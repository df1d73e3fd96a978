package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const openAISystemPrompt = "You are a helpful AI assistant."

// OpenAIProvider answers prompts through an OpenAI chat completion with a
// fixed system turn.
type OpenAIProvider struct {
	chatModel model.BaseChatModel
}

// NewOpenAIProvider builds a provider backed by the given OpenAI model.
// baseURL may be empty to use the default API endpoint.
func NewOpenAIProvider(ctx context.Context, apiKey, modelName, baseURL string) (*OpenAIProvider, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  apiKey,
		Model:   modelName,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init openai chat model: %w", err)
	}
	return &OpenAIProvider{chatModel: chatModel}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := p.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(openAISystemPrompt),
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if out == nil || out.Content == "" {
		return FallbackReply, nil
	}
	return out.Content, nil
}
