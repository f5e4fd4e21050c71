package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/abhisek/notequiz/internal/document"
	"github.com/abhisek/notequiz/internal/quizgen"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/theme"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [note-set-id...]",
	Short: "Generate quizzes for stored note sets (or a file with --file)",
	Long: "Runs the generate, evaluate and retry loop for each note set and replaces\n" +
		"its stored questions with the best set found. With --file, a document is\n" +
		"quizzed directly without being stored.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		if file == "" && len(args) == 0 {
			return errors.New("give at least one note set ID or --file")
		}
		if file != "" && len(args) > 0 {
			return errors.New("--file cannot be combined with note set IDs")
		}

		cfg, err := workflowConfig(cmd)
		if err != nil {
			return err
		}
		showAnswers, _ := cmd.Flags().GetBool("answers")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		completer, err := newCompleter(ctx, cmd, s)
		if err != nil {
			return err
		}
		w := quizgen.New(completer, cfg, slog.Default())

		if file != "" {
			return generateFromFile(ctx, w, file, showAnswers)
		}

		concurrency, _ := cmd.Flags().GetInt("concurrency")
		return generateForNoteSets(ctx, w, s, args, concurrency, showAnswers)
	},
}

func init() {
	def := quizgen.DefaultConfig()
	generateCmd.Flags().StringP("file", "f", "", "Quiz a document directly without storing it")
	generateCmd.Flags().Int("threshold", def.QualityThreshold, "Score (1-10) at or above which a quiz is accepted")
	generateCmd.Flags().Int("max-attempts", def.MaxAttempts, "Maximum generate/evaluate cycles per note set")
	generateCmd.Flags().Int("questions", def.QuestionCount, "Number of question/answer pairs to ask for")
	generateCmd.Flags().String("model", "", "Model override (default: provider's configured model)")
	generateCmd.Flags().IntP("concurrency", "c", 2, "Note sets processed in parallel")
	generateCmd.Flags().Bool("answers", true, "Print answers along with questions")
	generateCmd.Flags().Bool("structured", false, "Request questions as schema-checked JSON from the provider")
}

// workflowConfig builds the workflow tunables from flags.
func workflowConfig(cmd *cobra.Command) (quizgen.Config, error) {
	cfg := quizgen.DefaultConfig()
	cfg.QualityThreshold, _ = cmd.Flags().GetInt("threshold")
	cfg.MaxAttempts, _ = cmd.Flags().GetInt("max-attempts")
	cfg.QuestionCount, _ = cmd.Flags().GetInt("questions")
	cfg.Model, _ = cmd.Flags().GetString("model")
	cfg.Structured, _ = cmd.Flags().GetBool("structured")
	if err := cfg.Validate(); err != nil {
		return quizgen.Config{}, err
	}
	return cfg, nil
}

func generateFromFile(ctx context.Context, w *quizgen.Workflow, path string, showAnswers bool) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	res, err := w.RunDetailed(ctx, doc.Text)
	if err != nil {
		return err
	}
	printResult(doc.Title, res, toQuizItems(res.Questions), showAnswers)
	return nil
}

func generateForNoteSets(ctx context.Context, w *quizgen.Workflow, s *store.Store, args []string, concurrency int, showAnswers bool) error {
	notes := s.NoteRepo()

	sets := make(map[string]*store.NoteSet, len(args))
	items := make([]quizgen.BatchItem, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		ns, err := notes.GetNoteSet(ctx, id)
		if err != nil {
			return err
		}
		if ns.Content == "" {
			return fmt.Errorf("note set %d has no note text to quiz", id)
		}
		key := strconv.Itoa(id)
		if _, dup := sets[key]; dup {
			continue
		}
		sets[key] = ns
		items = append(items, quizgen.BatchItem{Key: key, DocumentText: ns.Content})
	}

	results, err := quizgen.RunBatch(ctx, w, items, concurrency)
	if err != nil {
		return err
	}

	runs := s.RunRepo()
	for _, r := range results {
		ns := sets[r.Key]
		saved, err := notes.ReplaceQuestions(ctx, ns.ID, toStorePairs(r.Result.Questions))
		if err != nil {
			return err
		}
		err = runs.RecordRun(ctx, store.WorkflowRun{
			RunID:         uuid.NewString(),
			NoteSetID:     ns.ID,
			Attempts:      r.Result.Attempts,
			BestScore:     r.Result.BestScore,
			Outcome:       string(r.Result.Outcome),
			Scores:        r.Result.Scores(),
			QuestionCount: len(saved),
			StartedAt:     r.Result.StartedAt.UTC(),
			DurationMs:    r.Result.Duration.Milliseconds(),
		})
		if err != nil {
			return err
		}
		printResult(fmt.Sprintf("%s (note set %d)", ns.Title, ns.ID), r.Result, storedQuizItems(saved), showAnswers)
	}
	return nil
}

func printResult(title string, res *quizgen.Result, items []theme.QuizItem, showAnswers bool) {
	fmt.Println(theme.RenderQuiz(title, items, showAnswers))
	fmt.Println()
	fmt.Println(theme.RenderOutcome(string(res.Outcome), res.Attempts, res.BestScore, quizgen.MaxScore))
	fmt.Println()
}

func toStorePairs(pairs []quizgen.QAPair) []store.QAPair {
	out := make([]store.QAPair, len(pairs))
	for i, p := range pairs {
		out[i] = store.QAPair{Question: p.Question, Answer: p.Answer}
	}
	return out
}

func toQuizItems(pairs []quizgen.QAPair) []theme.QuizItem {
	out := make([]theme.QuizItem, len(pairs))
	for i, p := range pairs {
		out[i] = theme.QuizItem{Question: p.Question, Answer: p.Answer}
	}
	return out
}

func storedQuizItems(qs []store.Question) []theme.QuizItem {
	out := make([]theme.QuizItem, len(qs))
	for i, q := range qs {
		out[i] = theme.QuizItem{ID: q.ID, Question: q.QuestionText, Answer: q.AnswerText, Reviewed: q.Reviewed}
	}
	return out
}
