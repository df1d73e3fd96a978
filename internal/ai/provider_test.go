package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	lastInput []*schema.Message
	reply     *schema.Message
	err       error
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.lastInput = input
	return f.reply, f.err
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestRegistryLookup(t *testing.T) {
	provider := &OpenAIProvider{chatModel: &fakeChatModel{}}
	registry := Registry{"gpt-4": provider}

	got, ok := registry.Lookup("gpt-4")
	require.True(t, ok)
	assert.Same(t, provider, got)

	_, ok = registry.Lookup("gemini")
	assert.False(t, ok)

	assert.True(t, registry.Supported("gpt-4"))
	assert.False(t, registry.Supported(""))
}

func TestOpenAIProviderAddsSystemTurn(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("hello there", nil)}
	provider := &OpenAIProvider{chatModel: fake}

	reply, err := provider.Complete(context.Background(), "Context:\n\nUser: Hi")
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)

	require.Len(t, fake.lastInput, 2)
	assert.Equal(t, schema.System, fake.lastInput[0].Role)
	assert.Equal(t, openAISystemPrompt, fake.lastInput[0].Content)
	assert.Equal(t, schema.User, fake.lastInput[1].Role)
	assert.Equal(t, "Context:\n\nUser: Hi", fake.lastInput[1].Content)
}

func TestClaudeProviderSendsSingleUserTurn(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("sure", nil)}
	provider := &ClaudeProvider{chatModel: fake}

	reply, err := provider.Complete(context.Background(), "Context:\n\nUser: Hi")
	require.NoError(t, err)
	assert.Equal(t, "sure", reply)

	require.Len(t, fake.lastInput, 1)
	assert.Equal(t, schema.User, fake.lastInput[0].Role)
}

func TestProvidersFallBackOnEmptyReply(t *testing.T) {
	openAI := &OpenAIProvider{chatModel: &fakeChatModel{reply: schema.AssistantMessage("", nil)}}
	reply, err := openAI.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)

	claude := &ClaudeProvider{chatModel: &fakeChatModel{reply: nil}}
	reply, err = claude.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestProvidersPropagateErrors(t *testing.T) {
	upstream := errors.New("rate limited")

	openAI := &OpenAIProvider{chatModel: &fakeChatModel{err: upstream}}
	_, err := openAI.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)

	claude := &ClaudeProvider{chatModel: &fakeChatModel{err: upstream}}
	_, err = claude.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
}
