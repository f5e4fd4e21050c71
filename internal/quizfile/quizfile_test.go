package quizfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/quizgen"
)

func TestWriteThenRead(t *testing.T) {
	exported := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := Quiz{
		Title:      "Cell Biology",
		Source:     "bio.pdf",
		Score:      8,
		ExportedAt: exported,
		Questions: []quizgen.QAPair{
			{Question: "What is the powerhouse of the cell?", Answer: "The mitochondrion"},
			{Question: "Where is DNA stored?", Answer: "The nucleus"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	assert.Contains(t, buf.String(), `"version": 1`)

	out, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, out.Version)
	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Source, out.Source)
	assert.Equal(t, in.Score, out.Score)
	assert.True(t, exported.Equal(out.ExportedAt))
	assert.Equal(t, in.Questions, out.Questions)
}

func TestWrite_EmptyQuestionsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Quiz{Title: "Empty"}))
	assert.Contains(t, buf.String(), `"questions": []`)

	q, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, q.Questions)
}

func TestRead_TrimsPairs(t *testing.T) {
	q, err := Read(strings.NewReader(`{"version":1,"title":"T","questions":[{"question":"  Why?  ","answer":"\tBecause.\n"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []quizgen.QAPair{{Question: "Why?", Answer: "Because."}}, q.Questions)
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `questions: []`},
		{"missing title", `{"version":1,"questions":[]}`},
		{"empty title", `{"version":1,"title":"","questions":[]}`},
		{"wrong version", `{"version":2,"title":"T","questions":[]}`},
		{"missing answer", `{"version":1,"title":"T","questions":[{"question":"Q"}]}`},
		{"extra field in pair", `{"version":1,"title":"T","questions":[{"question":"Q","answer":"A","hint":"h"}]}`},
		{"score out of range", `{"version":1,"title":"T","score":11,"questions":[]}`},
		{"blank after trim", `{"version":1,"title":"T","questions":[{"question":"   ","answer":"A"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid quiz file")
		})
	}
}

func TestRead_SchemaErrorIsInvalidResponse(t *testing.T) {
	_, err := Read(strings.NewReader(`{"title":"T"}`))
	var invalid *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}
