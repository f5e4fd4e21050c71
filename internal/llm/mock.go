package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// TextResponse is a convenience for a canned plain-text completion.
func TextResponse(text string) MockResponse {
	return MockResponse{Content: json.RawMessage(text)}
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request

	// fallback answers once the queue is empty. Nil means an empty queue
	// fails with ErrProviderUnavailable.
	fallback func(ctx context.Context, req Request) MockResponse
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewOfflineProvider returns a MockProvider that never runs dry. With an
// empty queue it answers generation requests with a fixed five-pair quiz
// and evaluation requests with a passing score.
func NewOfflineProvider() *MockProvider {
	return &MockProvider{fallback: offlineResponse}
}

// Generate returns the next canned response. An empty queue falls back to
// the offline answer, or ErrProviderUnavailable when there is none. A
// request Schema is enforced as the real providers do.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.fallback != nil:
		resp = m.fallback(ctx, req)
	default:
		return nil, &ErrProviderUnavailable{}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	if req.Schema != nil {
		if err := ValidateJSON(req.Schema, resp.Content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      modelFor(req, "mock"),
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Prompts returns the user message text of every recorded call.
func (m *MockProvider) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		for _, msg := range c.Messages {
			if msg.Role == RoleUser {
				out = append(out, msg.Content)
			}
		}
	}
	return out
}

var offlinePairs = [][2]string{
	{"What is the main topic of these notes?", "The subject named in the opening section."},
	{"Which term do the notes define first?", "The first bolded or introduced term."},
	{"What example do the notes give?", "The worked example in the body."},
	{"What conclusion do the notes reach?", "The summary in the closing section."},
	{"Which idea links the sections together?", "The recurring central concept."},
}

func offlineResponse(ctx context.Context, req Request) MockResponse {
	if PurposeFrom(ctx) == PurposeQuestionEval {
		return TextResponse("8")
	}

	if req.Schema != nil {
		type pair struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		}
		set := struct {
			Questions []pair `json:"questions"`
		}{}
		for _, p := range offlinePairs {
			set.Questions = append(set.Questions, pair{Question: p[0], Answer: p[1]})
		}
		data, err := json.Marshal(set)
		if err != nil {
			return MockResponse{Err: err}
		}
		return MockResponse{Content: data}
	}

	var b strings.Builder
	for _, p := range offlinePairs {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", p[0], p[1])
	}
	return TextResponse(b.String())
}
