package quizgen

import "fmt"

// Config controls a Workflow.
type Config struct {
	// QuestionCount is the number of pairs the generation prompt asks for.
	QuestionCount int

	// QualityThreshold is the score at or above which a set is accepted.
	QualityThreshold int

	// MaxAttempts bounds the number of generate-evaluate cycles.
	MaxAttempts int

	// FallbackScore is used when an evaluation reply cannot be parsed.
	FallbackScore int

	// Model is passed to the completer on every call. Empty selects the
	// provider default.
	Model string

	// Structured asks for the question set as schema-checked JSON when the
	// completer supports it. Evaluation always uses plain text.
	Structured bool
}

// DefaultConfig returns the standard workflow tunables.
func DefaultConfig() Config {
	return Config{
		QuestionCount:    5,
		QualityThreshold: 7,
		MaxAttempts:      3,
		FallbackScore:    DefaultFallbackScore,
	}
}

// Validate reports tunables that would make a run meaningless.
func (c Config) Validate() error {
	if c.QuestionCount < 1 {
		return fmt.Errorf("question count must be at least 1, got %d", c.QuestionCount)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.QualityThreshold < MinScore || c.QualityThreshold > MaxScore {
		return fmt.Errorf("quality threshold must be between %d and %d, got %d", MinScore, MaxScore, c.QualityThreshold)
	}
	if c.FallbackScore < MinScore || c.FallbackScore > MaxScore {
		return fmt.Errorf("fallback score must be between %d and %d, got %d", MinScore, MaxScore, c.FallbackScore)
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.QuestionCount == 0 {
		c.QuestionCount = d.QuestionCount
	}
	if c.QualityThreshold == 0 {
		c.QualityThreshold = d.QualityThreshold
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.FallbackScore == 0 {
		c.FallbackScore = d.FallbackScore
	}
	return c
}
