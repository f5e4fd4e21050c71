package theme

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderQuiz(t *testing.T) {
	items := []QuizItem{
		{ID: 12, Question: "What is osmosis?", Answer: "Diffusion of water", Reviewed: true},
		{Question: "Define entropy.", Answer: "A measure of disorder"},
	}

	out := RenderQuiz("Chemistry", items, true)
	assert.Contains(t, out, "Chemistry")
	assert.Contains(t, out, "What is osmosis?")
	assert.Contains(t, out, "Diffusion of water")
	assert.Contains(t, out, "#12")
	assert.Contains(t, out, " 2.")

	hidden := RenderQuiz("Chemistry", items, false)
	assert.NotContains(t, hidden, "Diffusion of water")
	assert.Contains(t, hidden, "Define entropy.")
}

func TestRenderQuiz_Empty(t *testing.T) {
	assert.Contains(t, RenderQuiz("Nothing", nil, true), "No questions.")
}

func TestScoreBar(t *testing.T) {
	tests := []struct {
		score, outOf, width int
		label               string
	}{
		{8, 10, 10, "8/10"},
		{0, 10, 10, "0/10"},
		{12, 10, 10, "12/10"},
		{5, 0, 2, "5/0"},
	}
	for _, tt := range tests {
		out := ScoreBar(tt.score, tt.outOf, tt.width)
		assert.Contains(t, out, tt.label)
		wantWidth := max(tt.width, 4) + len("  ") + len(tt.label)
		assert.Equal(t, wantWidth, lipgloss.Width(out))
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"ID", "TITLE"}, [][]string{{"1", "Biology"}, {"2", "History"}})
	for _, s := range []string{"ID", "TITLE", "Biology", "History"} {
		assert.True(t, strings.Contains(out, s), "missing %q", s)
	}
}
