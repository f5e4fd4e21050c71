package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []QAPair
	}{
		{
			name: "well formed",
			text: "Q: What is 2+2?\nA: 4\nQ: Capital of France?\nA: Paris\n",
			want: []QAPair{
				{Question: "What is 2+2?", Answer: "4"},
				{Question: "Capital of France?", Answer: "Paris"},
			},
		},
		{
			name: "preamble and surrounding whitespace",
			text: "Here are your questions:\n\nQ:   Why is the sky blue?  \nA:  Rayleigh scattering.  \n\n",
			want: []QAPair{{Question: "Why is the sky blue?", Answer: "Rayleigh scattering."}},
		},
		{
			name: "segment without answer is dropped",
			text: "Q: First?\nA: one\nQ: No answer here\nQ: Third?\nA: three",
			want: []QAPair{
				{Question: "First?", Answer: "one"},
				{Question: "Third?", Answer: "three"},
			},
		},
		{
			name: "answer split only once",
			text: "Q: Quote the rule.\nA: It says A: always check.",
			want: []QAPair{{Question: "Quote the rule.", Answer: "It says A: always check."}},
		},
		{
			name: "empty halves are dropped",
			text: "Q: \nA: orphan answer\nQ: Orphan question\nA:   \nQ: Kept?\nA: yes",
			want: []QAPair{{Question: "Kept?", Answer: "yes"}},
		},
		{
			name: "leading segment with answer marker",
			text: "Define osmosis.\nA: Water diffusing across a membrane\nQ: Next?\nA: yes",
			want: []QAPair{
				{Question: "Define osmosis.", Answer: "Water diffusing across a membrane"},
				{Question: "Next?", Answer: "yes"},
			},
		},
		{
			name: "no answer markers",
			text: "Q: one\nQ: two\nQ: three",
			want: []QAPair{},
		},
		{
			name: "empty text",
			text: "",
			want: []QAPair{},
		},
		{
			name: "unrelated prose",
			text: "I cannot help with that.",
			want: []QAPair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuestions(tt.text)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuestionsCountsDropped(t *testing.T) {
	_, dropped := parseQuestions("intro\nQ: a\nA: b\nQ: lost\nQ: \nA: x")
	assert.Equal(t, 2, dropped)
}

func TestParseQuestionsRoundTripsFormatPairs(t *testing.T) {
	pairs := []QAPair{
		{Question: "What is mitosis?", Answer: "Cell division."},
		{Question: "Where is DNA stored?", Answer: "In the nucleus."},
	}
	assert.Equal(t, pairs, ParseQuestions(formatPairs(pairs)))
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"8", 8},
		{"  9  ", 9},
		{"\n10\n", 10},
		{"1", 1},
		{"+6", 6},
		{"not a number", DefaultFallbackScore},
		{"", DefaultFallbackScore},
		{"   ", DefaultFallbackScore},
		{"7.5", DefaultFallbackScore},
		{"8/10", DefaultFallbackScore},
		{"Score: 8", DefaultFallbackScore},
		{"0", DefaultFallbackScore},
		{"11", DefaultFallbackScore},
		{"-3", DefaultFallbackScore},
		{"99999999999999999999", DefaultFallbackScore},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScore(tt.text))
		})
	}
}

func TestParseScoreFallbackIsSeven(t *testing.T) {
	assert.Equal(t, 7, ParseScore("garbage"))
}

func TestParseScoreCustomFallback(t *testing.T) {
	score, ok := parseScore("n/a", 3)
	assert.False(t, ok)
	assert.Equal(t, 3, score)

	score, ok = parseScore("4", 3)
	assert.True(t, ok)
	assert.Equal(t, 4, score)
}
