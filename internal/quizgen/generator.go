package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/abhisek/notequiz/internal/llm"
)

// Completer is the text completion service the workflow drives. Complete
// makes one blocking call; an error aborts the run.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// JSONCompleter is a Completer with a structured output mode. Generation
// uses it when Config.Structured is set.
type JSONCompleter interface {
	Completer
	CompleteJSON(ctx context.Context, model, prompt string, schema *llm.Schema) (json.RawMessage, error)
}

// Generator turns document text into a question set with one completion.
type Generator struct {
	completer Completer
	config    Config
	logger    *slog.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(completer Completer, cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{completer: completer, config: cfg.withDefaults(), logger: logger}
}

// Generate asks for a fresh question set. The count and quality of the
// result are not checked here; an empty set is a valid result.
func (g *Generator) Generate(ctx context.Context, documentText string, attempt int) ([]QAPair, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	if g.config.Structured {
		if jc, ok := g.completer.(JSONCompleter); ok {
			return g.generateStructured(ctx, jc, documentText, attempt)
		}
		g.logger.Debug("completer has no structured mode, using text", "attempt", attempt)
	}

	g.logger.Info("generating questions", "attempt", attempt)
	reply, err := g.completer.Complete(ctx, g.config.Model, buildGenerationPrompt(documentText, g.config.QuestionCount))
	if err != nil {
		return nil, err
	}

	pairs, dropped := parseQuestions(reply)
	g.logGenerated(attempt, pairs, dropped)
	return pairs, nil
}

// generateStructured is Generate in JSON mode. A reply that fails the
// schema counts as an empty set, like unparseable text.
func (g *Generator) generateStructured(ctx context.Context, jc JSONCompleter, documentText string, attempt int) ([]QAPair, error) {
	g.logger.Info("generating questions", "attempt", attempt, "structured", true)
	raw, err := jc.CompleteJSON(ctx, g.config.Model, buildStructuredGenerationPrompt(documentText, g.config.QuestionCount), questionSetSchema)
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if !errors.As(err, &invalid) {
			return nil, err
		}
		g.logger.Debug("structured reply rejected", "attempt", attempt, "error", err)
		return []QAPair{}, nil
	}

	pairs, dropped, err := decodeQuestionSet(raw)
	if err != nil {
		g.logger.Debug("structured reply undecodable", "attempt", attempt, "error", err)
	}
	g.logGenerated(attempt, pairs, dropped)
	return pairs, nil
}

func (g *Generator) logGenerated(attempt int, pairs []QAPair, dropped int) {
	if dropped > 0 {
		g.logger.Debug("dropped unparseable segments", "attempt", attempt, "dropped", dropped)
	}
	g.logger.Info("generated questions", "attempt", attempt, "count", len(pairs))
}
