package cmd

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/document"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Store a note file (text, markdown or PDF) as a note set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Load(args[0])
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = doc.Title
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ns, err := s.NoteRepo().CreateNoteSet(cmd.Context(), store.NoteSet{
			Title:      title,
			SourcePath: doc.Path,
			Content:    doc.Text,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added note set %d: %s (%d characters)\n", ns.ID, ns.Title, len(ns.Content))
		fmt.Printf("Run `notequiz generate %d` to build its quiz.\n", ns.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("title", "t", "", "Title for the note set (default: document title or file name)")
}
