package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider implements Provider against a local Ollama server through
// langchaingo. Structured output is not requested natively; when a Schema is
// set the reply is validated after the fact.
type OllamaProvider struct {
	model     llms.Model
	modelName string

	// newModel builds a client for a per-request model override.
	newModel func(name string) (llms.Model, error)
}

// NewOllamaProvider creates a provider for the configured Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	newModel := func(name string) (llms.Model, error) {
		return ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(name),
		)
	}

	m, err := newModel(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("create Ollama client: %w", err)
	}

	return &OllamaProvider{model: m, modelName: cfg.Model, newModel: newModel}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	modelName := p.modelName
	if req.Model != "" && req.Model != p.modelName {
		m, err := p.newModel(req.Model)
		if err != nil {
			return nil, fmt.Errorf("create Ollama client for %s: %w", req.Model, err)
		}
		model, modelName = m, req.Model
	}

	var opts []llms.CallOption
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if req.Schema != nil {
		opts = append(opts, llms.WithJSONMode())
	}

	out, err := model.GenerateContent(ctx, buildLangchainMessages(req), opts...)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if out == nil || len(out.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in Ollama response")}
	}

	choice := out.Choices[0]
	content := json.RawMessage(choice.Content)

	if req.Schema != nil {
		if err := ValidateJSON(req.Schema, content); err != nil {
			return nil, err
		}
	}

	resp := &Response{
		Content:    content,
		Model:      modelName,
		StopReason: "end",
	}
	if choice.StopReason == "length" {
		resp.StopReason = "max_tokens"
	}
	if info := choice.GenerationInfo; info != nil {
		resp.Usage = Usage{
			InputTokens:  intFromInfo(info, "PromptTokens"),
			OutputTokens: intFromInfo(info, "CompletionTokens"),
			TotalTokens:  intFromInfo(info, "TotalTokens"),
		}
		if resp.Usage.TotalTokens == 0 {
			resp.Usage.TotalTokens = resp.Usage.InputTokens + resp.Usage.OutputTokens
		}
	}

	return resp, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.modelName
}

func buildLangchainMessages(req Request) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}
	return messages
}

// intFromInfo reads a token count from langchaingo's GenerationInfo, whose
// numeric type varies by backend.
func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
