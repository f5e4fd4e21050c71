package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeLangchainModel struct {
	reply    *llms.ContentResponse
	err      error
	messages []llms.MessageContent
}

func (f *fakeLangchainModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	return f.reply, f.err
}

func (f *fakeLangchainModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func newFakeOllama(model *fakeLangchainModel) *OllamaProvider {
	return &OllamaProvider{
		model:     model,
		modelName: "llama3.1",
		newModel: func(name string) (llms.Model, error) {
			return model, nil
		},
	}
}

func TestOllamaProvider_Generate(t *testing.T) {
	fake := &fakeLangchainModel{reply: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			Content:        "Q: What is mitosis?\nA: Cell division",
			StopReason:     "stop",
			GenerationInfo: map[string]any{"PromptTokens": 40, "CompletionTokens": 12},
		}},
	}}
	p := newFakeOllama(fake)

	resp, err := p.Generate(context.Background(), Request{
		System:   "You write study quizzes.",
		Messages: []Message{{Role: RoleUser, Content: "Write one question."}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Q: What is mitosis?\nA: Cell division", resp.Text())
	assert.Equal(t, "llama3.1", resp.Model)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52}, resp.Usage)

	require.Len(t, fake.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, fake.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, fake.messages[1].Role)
}

func TestOllamaProvider_ModelOverride(t *testing.T) {
	fake := &fakeLangchainModel{reply: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "6", StopReason: "length"}},
	}}
	p := newFakeOllama(fake)

	resp, err := p.Generate(context.Background(), Request{Model: "mistral"})
	require.NoError(t, err)
	assert.Equal(t, "mistral", resp.Model)
	assert.Equal(t, "max_tokens", resp.StopReason)
	assert.Equal(t, "llama3.1", p.ModelID())
}

func TestOllamaProvider_Errors(t *testing.T) {
	p := newFakeOllama(&fakeLangchainModel{err: errors.New("connection refused")})
	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)

	p = newFakeOllama(&fakeLangchainModel{reply: &llms.ContentResponse{}})
	_, err = p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestOllamaProvider_SchemaValidated(t *testing.T) {
	fake := &fakeLangchainModel{reply: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: `{"question":"Q"}`}},
	}}
	p := newFakeOllama(fake)

	_, err := p.Generate(context.Background(), Request{Schema: pairSchema("ollama-pair")})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestNewOllamaProvider_RequiresModel(t *testing.T) {
	_, err := NewOllamaProvider(OllamaConfig{ServerURL: "http://localhost:11434"})
	assert.Error(t, err)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg := DefaultConfig()
	cfg.Provider = "ollama"
	p, err = NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "llama3.1", p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: "gemini"}, nil, nil)
	assert.Error(t, err, "missing API key")

	_, err = NewProvider(context.Background(), Config{Provider: "carrier-pigeon"}, nil, nil)
	assert.Error(t, err)
}

func TestNewProvider_MockAnswersWithoutScript(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	require.NoError(t, err)
	c := NewTextCompleter(p, CompletionOptions{})

	quiz, err := c.Complete(WithPurpose(context.Background(), PurposeQuestionGen), "", "notes")
	require.NoError(t, err)
	assert.Contains(t, quiz, "Q: ")
	assert.Contains(t, quiz, "\nA: ")

	score, err := c.Complete(WithPurpose(context.Background(), PurposeQuestionEval), "", quiz)
	require.NoError(t, err)
	assert.Equal(t, "8", score)
}
