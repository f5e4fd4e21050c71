// Package quizfile reads and writes accepted question sets as JSON.
package quizfile

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/quizgen"
)

// FormatVersion is written to every exported file.
const FormatVersion = 1

// Quiz is the on-disk form of a question set.
type Quiz struct {
	Version    int              `json:"version"`
	Title      string           `json:"title"`
	Source     string           `json:"source,omitempty"`
	Score      int              `json:"score,omitempty"`
	ExportedAt time.Time        `json:"exported_at"`
	Questions  []quizgen.QAPair `json:"questions"`
}

// Schema validates imported files before they are decoded.
var Schema = &llm.Schema{
	Name:        "notequiz-quiz-file",
	Description: "An exported quiz: a titled list of question/answer pairs",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version": map[string]any{
				"type":    "integer",
				"const":   FormatVersion,
				"minimum": 1,
			},
			"title": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"source": map[string]any{"type": "string"},
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": quizgen.MaxScore,
			},
			"exported_at": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"answer":   map[string]any{"type": "string", "minLength": 1},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required": []any{"version", "title", "questions"},
	},
}

// Write encodes q as indented JSON. Version and ExportedAt are filled in
// when unset.
func Write(w io.Writer, q Quiz) error {
	if q.Version == 0 {
		q.Version = FormatVersion
	}
	if q.ExportedAt.IsZero() {
		q.ExportedAt = time.Now().UTC()
	}
	if q.Questions == nil {
		q.Questions = []quizgen.QAPair{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	return nil
}

// Read decodes and validates a quiz. Questions whose text is blank after
// trimming are rejected.
func Read(r io.Reader) (*Quiz, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	if err := llm.ValidateJSON(Schema, raw); err != nil {
		return nil, fmt.Errorf("invalid quiz file: %w", err)
	}

	var q Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}

	for i, p := range q.Questions {
		p.Question = strings.TrimSpace(p.Question)
		p.Answer = strings.TrimSpace(p.Answer)
		if p.Question == "" || p.Answer == "" {
			return nil, fmt.Errorf("invalid quiz file: question %d is blank", i+1)
		}
		q.Questions[i] = p
	}
	return &q, nil
}
