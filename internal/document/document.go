// Package document extracts plain text from note files so it can be fed to
// the quiz workflow.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNoText is returned when a file yields no text at all.
	ErrNoText = errors.New("no text content found")

	// ErrNotText is returned for non-PDF files that are not valid UTF-8.
	ErrNotText = errors.New("file is neither PDF nor UTF-8 text")
)

// Kind is the detected format of a loaded file.
type Kind string

const (
	KindText     Kind = "text"
	KindMarkdown Kind = "markdown"
	KindPDF      Kind = "pdf"
)

// Document is the extracted content of one file.
type Document struct {
	Path  string
	Title string
	Kind  Kind
	Text  string
	Pages int // PDF only
}

// Load reads path and extracts its text. PDF pages are joined with blank
// lines; everything else is read as UTF-8 text.
func Load(path string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		doc, err = loadPDF(path)
	case ".md", ".markdown":
		doc, err = loadText(path, KindMarkdown)
	default:
		doc, err = loadText(path, KindText)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	doc.Text = strings.TrimSpace(doc.Text)
	if doc.Text == "" {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoText)
	}
	if doc.Title == "" {
		doc.Title = titleFromPath(path)
	}
	return doc, nil
}

func loadText(path string, kind Kind) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrNotText
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	doc := &Document{Path: path, Kind: kind, Text: text}
	if kind == KindMarkdown {
		doc.Title = markdownTitle(text)
	}
	return doc, nil
}

func loadPDF(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if f != nil {
		defer f.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	numPages := r.NumPage()
	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; the rest may still be usable.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(text)
	}

	doc := &Document{Path: path, Kind: KindPDF, Text: b.String(), Pages: numPages}
	if trailer := r.Trailer(); !trailer.IsNull() {
		if info := trailer.Key("Info"); !info.IsNull() {
			doc.Title = strings.TrimSpace(info.Key("Title").Text())
		}
	}
	return doc, nil
}

// markdownTitle returns the text of the first level-one heading.
func markdownTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if t, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return strings.TrimSpace(t)
		}
	}
	return ""
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
