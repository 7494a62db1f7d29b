package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/tutor"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Teacher notes about a learner",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a note and queue a plan revision",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		author, _ := cmd.Flags().GetString("author")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		// Teacher input revises the plan; a missing provider fails that
		// effect soft instead of blocking the note.
		provider, perr := newProvider(ctx, s)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", perr)
		}
		svc := tutor.NewService(s, provider)

		out, err := svc.AddNote(ctx, tutor.NoteInput{
			LearnerID: learnerID(cmd),
			Author:    author,
			Body:      strings.Join(args, " "),
		})
		if err != nil {
			return err
		}
		fmt.Println("Note added.")
		tutor.RunEffects(ctx, out.Effects)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		notes, err := s.Notes().Recent(context.Background(), learnerID(cmd), limit)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println("No notes yet.")
			return nil
		}
		for _, n := range notes {
			author := n.Author
			if author == "" {
				author = "unknown"
			}
			fmt.Printf("%s  %-12s %s\n", n.CreatedAt.Local().Format("2006-01-02"), author, n.Body)
		}
		return nil
	},
}

func init() {
	noteAddCmd.Flags().String("author", "", "Note author")
	noteListCmd.Flags().IntP("limit", "n", 10, "Number of notes to show")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
}
