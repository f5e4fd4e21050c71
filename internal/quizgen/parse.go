package quizgen

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/abhisek/notequiz/internal/llm"
)

const (
	questionMarker = "Q: "
	answerMarker   = "A: "

	// DefaultFallbackScore is assumed when an evaluation reply is not an
	// integer in [MinScore, MaxScore].
	DefaultFallbackScore = 7

	MinScore = 1
	MaxScore = 10
)

// ParseQuestions extracts the Q:/A: pairs of a generation reply in the
// order they appear. Segments without an answer, or with an empty question
// or answer, are dropped.
func ParseQuestions(text string) []QAPair {
	pairs, _ := parseQuestions(text)
	return pairs
}

// parseQuestions is ParseQuestions that also counts dropped segments.
func parseQuestions(text string) (pairs []QAPair, dropped int) {
	pairs = []QAPair{}
	for i, segment := range strings.Split(text, questionMarker) {
		question, answer, ok := strings.Cut(segment, answerMarker)
		if !ok {
			// Text before the first marker is preamble, not a dropped pair.
			if i > 0 {
				dropped++
			}
			continue
		}
		question = strings.TrimSpace(question)
		answer = strings.TrimSpace(answer)
		if question == "" || answer == "" {
			dropped++
			continue
		}
		pairs = append(pairs, QAPair{Question: question, Answer: answer})
	}
	return pairs, dropped
}

// decodeQuestionSet reads a structured generation reply. Pairs with an
// empty question or answer are dropped, as in parseQuestions.
func decodeQuestionSet(raw json.RawMessage) (pairs []QAPair, dropped int, err error) {
	var set struct {
		Questions []QAPair `json:"questions"`
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return []QAPair{}, 0, err
	}
	pairs = make([]QAPair, 0, len(set.Questions))
	for _, p := range set.Questions {
		p.Question = strings.TrimSpace(p.Question)
		p.Answer = strings.TrimSpace(p.Answer)
		if p.Question == "" || p.Answer == "" {
			dropped++
			continue
		}
		pairs = append(pairs, p)
	}
	return pairs, dropped, nil
}

// ParseScore reads an evaluation reply as a score, falling back to
// DefaultFallbackScore.
func ParseScore(text string) int {
	score, _ := parseScore(text, DefaultFallbackScore)
	return score
}

// parseScore returns fallback and false when text is not a whole number
// within [MinScore, MaxScore].
func parseScore(text string, fallback int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < MinScore || n > MaxScore {
		return fallback, false
	}
	return n, true
}

// questionSetSchema is the reply shape for structured generation.
var questionSetSchema = &llm.Schema{
	Name:        "quiz-question-set",
	Description: "Question/answer pairs covering a study document",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"questions"},
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"question", "answer"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "description": "Question answerable from the document"},
						"answer":   map[string]any{"type": "string", "description": "Short factual answer"},
					},
				},
			},
		},
	},
}
