package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantKind  Kind
		wantTitle string
		wantText  string
	}{
		{
			name:      "plain text",
			file:      "biology-notes.txt",
			content:   "  Cells are the basic unit of life.\r\nThey divide by mitosis.\r\n\n",
			wantKind:  KindText,
			wantTitle: "biology-notes",
			wantText:  "Cells are the basic unit of life.\nThey divide by mitosis.",
		},
		{
			name:      "markdown with heading",
			file:      "chem.md",
			content:   "Intro line\n\n# Acids and Bases\n\npH below 7 is acidic.\n",
			wantKind:  KindMarkdown,
			wantTitle: "Acids and Bases",
			wantText:  "Intro line\n\n# Acids and Bases\n\npH below 7 is acidic.",
		},
		{
			name:      "markdown without heading",
			file:      "history.markdown",
			content:   "## Only a subheading\nThe war ended in 1945.",
			wantKind:  KindMarkdown,
			wantTitle: "history",
			wantText:  "## Only a subheading\nThe war ended in 1945.",
		},
		{
			name:      "unknown extension read as text",
			file:      "notes",
			content:   "Gravity pulls objects together.",
			wantKind:  KindText,
			wantTitle: "notes",
			wantText:  "Gravity pulls objects together.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, []byte(tt.content))
			doc, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, doc.Kind)
			assert.Equal(t, tt.wantTitle, doc.Title)
			assert.Equal(t, tt.wantText, doc.Text)
			assert.Equal(t, path, doc.Path)
		})
	}
}

func TestLoad_EmptyTextIsError(t *testing.T) {
	path := writeFile(t, "empty.txt", []byte(" \n\t\n"))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestLoad_BinaryIsRejected(t *testing.T) {
	path := writeFile(t, "image.png", []byte{0x89, 'P', 'N', 'G', 0xff, 0xfe, 0x00})
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNotText)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidPDF(t *testing.T) {
	path := writeFile(t, "broken.pdf", []byte("this is not a pdf"))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open PDF")
}
