package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/notequiz/internal/quizfile"
	"github.com/abhisek/notequiz/internal/quizgen"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <note-set-id>",
	Short: "Export a note set's quiz as JSON",
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

		ctx := cmd.Context()
		ns, err := s.NoteRepo().GetNoteSet(ctx, id)
		if err != nil {
			return err
		}
		qs, err := s.NoteRepo().Questions(ctx, id)
		if err != nil {
			return err
		}

		q := quizfile.Quiz{
			Title:     ns.Title,
			Source:    ns.SourcePath,
			Questions: make([]quizgen.QAPair, len(qs)),
		}
		for i, sq := range qs {
			q.Questions[i] = quizgen.QAPair{Question: sq.QuestionText, Answer: sq.AnswerText}
		}
		runs, err := s.RunRepo().RunsForNoteSet(ctx, id)
		if err != nil {
			return err
		}
		if len(runs) > 0 {
			q.Score = runs[0].BestScore
		}

		out, _ := cmd.Flags().GetString("output")
		var w io.Writer = os.Stdout
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return quizfile.Write(w, q)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a quiz JSON file as a new note set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		q, err := quizfile.Read(f)
		if err != nil {
			return err
		}
		if title, _ := cmd.Flags().GetString("title"); title != "" {
			q.Title = title
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		notes := s.NoteRepo()
		ns, err := notes.CreateNoteSet(ctx, store.NoteSet{
			Title:      q.Title,
			SourcePath: q.Source,
		})
		if err != nil {
			return err
		}
		saved, err := notes.ReplaceQuestions(ctx, ns.ID, toStorePairs(q.Questions))
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d questions as note set %d: %s\n", len(saved), ns.ID, ns.Title)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	importCmd.Flags().StringP("title", "t", "", "Title for the new note set (default: title in file)")
}
