package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/tutor"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Record quiz submissions",
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit <score>",
	Short: "Record a submitted quiz with per-item outcomes",
	Long: `Record a submitted quiz. Items are given as repeated --item flags in the
form skill:ok or skill:wrong[:mistake-tag], e.g.

  lexio quiz submit 66 --item vocabulary:ok --item grammar:wrong:gender-agreement`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var score float64
		if _, err := fmt.Sscanf(args[0], "%f", &score); err != nil {
			return fmt.Errorf("invalid score %q: %w", args[0], err)
		}
		rawItems, _ := cmd.Flags().GetStringArray("item")
		session, _ := cmd.Flags().GetString("session")

		items, err := parseQuizItems(rawItems)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		// The queued plan revision needs a provider; without one it
		// fails soft instead of blocking the recording.
		provider, perr := newProvider(ctx, s)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", perr)
		}
		svc := tutor.NewService(s, provider)

		in := tutor.QuizInput{LearnerID: learnerID(cmd), Score: score, Items: items}
		if session != "" {
			in.SessionID = &session
		}

		out, err := svc.SubmitQuiz(ctx, in)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded quiz %.0f with %d item(s).\n", score, len(items))
		tutor.RunEffects(ctx, out.Effects)
		return nil
	},
}

func parseQuizItems(raw []string) ([]tutor.QuizItem, error) {
	items := make([]tutor.QuizItem, 0, len(raw))
	for _, r := range raw {
		parts := strings.SplitN(r, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid item %q: want skill:ok or skill:wrong[:mistake-tag]", r)
		}
		sk, err := skill.Parse(parts[0])
		if err != nil {
			return nil, err
		}
		item := tutor.QuizItem{Skill: sk}
		switch parts[1] {
		case "ok":
			item.Correct = true
		case "wrong":
			if len(parts) == 3 {
				item.Mistake = parts[2]
			}
		default:
			return nil, fmt.Errorf("invalid item %q: outcome must be ok or wrong", r)
		}
		items = append(items, item)
	}
	return items, nil
}

func init() {
	quizSubmitCmd.Flags().StringArray("item", nil, "Per-item outcome: skill:ok or skill:wrong[:mistake-tag]")
	quizSubmitCmd.Flags().String("session", "", "Session ID this quiz belongs to")

	quizCmd.AddCommand(quizSubmitCmd)
}
