package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// QuizItem is one question as shown on screen.
type QuizItem struct {
	ID       int // 0 hides the ID
	Question string
	Answer   string
	Reviewed bool
}

// RenderQuiz renders a titled, numbered question list. Answers are hidden
// when showAnswers is false.
func RenderQuiz(title string, items []QuizItem, showAnswers bool) string {
	var b strings.Builder
	b.WriteString(Title.Render(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(Hint.Render("No questions."))
		return b.String()
	}

	for i, it := range items {
		b.WriteString("\n")
		num := fmt.Sprintf("%2d.", i+1)
		line := QuestionNumber.Render(num) + " " + Question.Render(it.Question)
		if it.ID > 0 {
			line += " " + Hint.Render(fmt.Sprintf("#%d", it.ID))
		}
		if it.Reviewed {
			line += " " + Reviewed.Render("✓")
		}
		b.WriteString(line)
		if showAnswers {
			b.WriteString("\n")
			b.WriteString(Answer.Render(it.Answer))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ScoreBar renders score out of outOf as a bar of width cells with a label.
func ScoreBar(score, outOf, width int) string {
	if width < 4 {
		width = 4
	}
	filled := 0
	if outOf > 0 {
		filled = width * score / outOf
	}
	filled = min(max(filled, 0), width)

	bar := BarFilled.Render(strings.Repeat(" ", filled)) +
		BarEmpty.Render(strings.Repeat(" ", width-filled))
	return bar + Subtitle.Render(fmt.Sprintf("  %d/%d", score, outOf))
}

// RenderOutcome labels a finished run.
func RenderOutcome(outcome string, attempts, bestScore, maxScore int) string {
	style := Exhausted
	if outcome == "accepted" {
		style = Accepted
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Render(strings.ToUpper(outcome)),
		Subtitle.Render(fmt.Sprintf("  after %d attempt(s)  ", attempts)),
		ScoreBar(bestScore, maxScore, 10),
	)
}

// RenderTable renders rows under headers with the theme's border.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Title.Padding(0, 1)
			}
			return Body.Padding(0, 1)
		})
	return t.String()
}
