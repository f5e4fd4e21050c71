package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#14B8A6") // Teal
	Warn    = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Quiz
var (
	QuestionNumber = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Question = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	Answer = lipgloss.NewStyle().
		Foreground(TextDim).
		PaddingLeft(4)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Reviewed = lipgloss.NewStyle().
			Foreground(Success)
)

// Outcomes
var (
	Accepted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Exhausted = lipgloss.NewStyle().
			Foreground(Warn).
			Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Score bar
var (
	BarFilled = lipgloss.NewStyle().
			Background(Accent)

	BarEmpty = lipgloss.NewStyle().
			Background(Border)
)
