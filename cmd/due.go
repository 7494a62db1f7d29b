package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/review"
	"github.com/abhisek/lexio/internal/store"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show facts due for review, hardest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		now := time.Now()
		facts, err := s.Facts().Due(context.Background(), learnerID(cmd), now)
		if err != nil {
			return err
		}
		if len(facts) == 0 {
			fmt.Println("Nothing due. Come back tomorrow.")
			return nil
		}

		byID := make(map[string]store.Fact, len(facts))
		entries := make([]review.QueueEntry, len(facts))
		for i, f := range facts {
			byID[f.ID] = f
			entries[i] = review.QueueEntry{
				ID:             f.ID,
				MemoryStrength: f.MemoryStrength,
				TimesReviewed:  f.TimesReviewed,
				NextReviewDate: f.NextReviewDate,
			}
		}

		queue := review.Prioritize(entries)
		if limit > 0 && len(queue) > limit {
			queue = queue[:limit]
		}

		fmt.Printf("%d fact(s) due:\n\n", len(facts))
		fmt.Printf("%-36s  %-10s  %-6s  %-7s  %s\n", "ID", "Skill", "Ease", "Overdue", "Content")
		fmt.Println(strings.Repeat("─", 100))
		for _, e := range queue {
			f := byID[e.ID]
			state := review.FactState{TimesReviewed: f.TimesReviewed, NextReviewDate: f.NextReviewDate}
			overdue := "new"
			if !state.NeverReviewed() {
				overdue = fmt.Sprintf("%.0fd", state.OverdueDays(now))
			}
			content := f.Content
			if len(content) > 44 {
				content = content[:44]
			}
			fmt.Printf("%-36s  %-10s  %-6.2f  %-7s  %s\n",
				f.ID, f.Skill, f.MemoryStrength, overdue, content)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().IntP("limit", "n", 0, "Show at most n facts (0 = all)")
}
