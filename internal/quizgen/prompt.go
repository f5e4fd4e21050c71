package quizgen

import (
	"fmt"
	"strings"
)

const generationRules = `You are writing a study quiz from a student's notes.

Rules:
- Read the entire document before writing anything.
- Cover the full range of topics in the document, not just the opening section.
- Each question must be answerable from the document alone.
- Keep answers short and factual.`

const generationInstructions = generationRules + `
- Write every pair in exactly this format, with nothing else around it:
Q: [question]
A: [answer]`

const structuredGenerationInstructions = generationRules + `
- Reply with a JSON object whose "questions" array holds one
  {"question": ..., "answer": ...} object per pair.`

const evaluationInstructions = `You are grading a study quiz generated from a student's notes.

Score the quiz on a scale of 1-10:
- Topical coverage across the whole document matters most. A quiz that only
  covers one section cannot score above 5.
- Clarity and correctness of the writing matter second.

Respond with ONLY a whole number from 1 to 10.`

// buildGenerationPrompt asks for exactly count pairs covering documentText.
func buildGenerationPrompt(documentText string, count int) string {
	return generationPrompt(generationInstructions, documentText, count)
}

// buildStructuredGenerationPrompt is buildGenerationPrompt for JSON replies.
func buildStructuredGenerationPrompt(documentText string, count int) string {
	return generationPrompt(structuredGenerationInstructions, documentText, count)
}

func generationPrompt(instructions, documentText string, count int) string {
	var b strings.Builder
	b.WriteString(instructions)
	fmt.Fprintf(&b, "\n\nGenerate exactly %d question/answer pairs from this document:\n\n", count)
	b.WriteString(documentText)
	return b.String()
}

// buildEvaluationPrompt embeds every pair as alternating Q:/A: lines.
func buildEvaluationPrompt(questions []QAPair) string {
	var b strings.Builder
	b.WriteString(evaluationInstructions)
	b.WriteString("\n\nQuestions:\n")
	b.WriteString(formatPairs(questions))
	return b.String()
}

// formatPairs renders pairs in the Q:/A: format ParseQuestions reads.
func formatPairs(questions []QAPair) string {
	if len(questions) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(questions)*2)
	for _, q := range questions {
		lines = append(lines, questionMarker+q.Question, answerMarker+q.Answer)
	}
	return strings.Join(lines, "\n")
}
