package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/notequiz/internal/ui/theme"
	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage stored note sets and their questions",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List note sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		notes := s.NoteRepo()
		sets, err := notes.ListNoteSets(ctx)
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			fmt.Println("No note sets yet. Add one with `notequiz add <file>`.")
			return nil
		}

		rows := make([][]string, 0, len(sets))
		for _, ns := range sets {
			qs, err := notes.Questions(ctx, ns.ID)
			if err != nil {
				return err
			}
			reviewed := 0
			for _, q := range qs {
				if q.Reviewed {
					reviewed++
				}
			}
			rows = append(rows, []string{
				strconv.Itoa(ns.ID),
				truncate(ns.Title, 40),
				ns.UploadedAt.Local().Format("2006-01-02 15:04"),
				strconv.Itoa(len(qs)),
				fmt.Sprintf("%d/%d", reviewed, len(qs)),
			})
		}
		fmt.Println(theme.RenderTable([]string{"ID", "Title", "Uploaded", "Questions", "Reviewed"}, rows))
		return nil
	},
}

var notesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note set's quiz and generation history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
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
		ns, err := s.NoteRepo().GetNoteSet(ctx, id)
		if err != nil {
			return err
		}
		qs, err := s.NoteRepo().Questions(ctx, id)
		if err != nil {
			return err
		}

		fmt.Println(theme.RenderQuiz(ns.Title, storedQuizItems(qs), showAnswers))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("\nSource: %s  Uploaded: %s",
			orDash(ns.SourcePath), ns.UploadedAt.Local().Format("2006-01-02 15:04"))))

		runs, err := s.RunRepo().RunsForNoteSet(ctx, id)
		if err != nil {
			return err
		}
		if len(runs) > 0 {
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					r.StartedAt.Local().Format("2006-01-02 15:04"),
					r.Outcome,
					strconv.Itoa(r.Attempts),
					fmt.Sprint(r.Scores),
					strconv.Itoa(r.BestScore),
					fmt.Sprintf("%dms", r.DurationMs),
				})
			}
			fmt.Println()
			fmt.Println(theme.RenderTable([]string{"Run", "Outcome", "Attempts", "Scores", "Best", "Took"}, rows))
		}
		return nil
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note set and its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.NoteRepo().DeleteNoteSet(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted note set %d.\n", id)
		return nil
	},
}

var notesReviewCmd = &cobra.Command{
	Use:   "review <question-id>",
	Short: "Mark a question as reviewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		undo, _ := cmd.Flags().GetBool("undo")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.NoteRepo().MarkReviewed(cmd.Context(), id, !undo); err != nil {
			return err
		}
		if undo {
			fmt.Printf("Question %d marked as not reviewed.\n", id)
		} else {
			fmt.Printf("Question %d marked as reviewed.\n", id)
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	notesShowCmd.Flags().Bool("answers", true, "Print answers along with questions")
	notesReviewCmd.Flags().Bool("undo", false, "Clear the reviewed flag instead")

	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesDeleteCmd)
	notesCmd.AddCommand(notesReviewCmd)
}
