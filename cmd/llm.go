package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.LLMEvents().QueryLLMEvents(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if purpose != "" {
			filtered := events[:0]
			for _, e := range events {
				if e.Purpose == purpose {
					filtered = append(filtered, e)
				}
			}
			events = filtered
		}
		if len(events) == 0 {
			fmt.Println("No LLM events recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-13s  %-26s  %9s  %7s  %s\n",
			"ID", "When", "Purpose", "Model", "Tokens", "Ms", "Status")
		for _, e := range events {
			status := "ok"
			if !e.Success {
				status = "FAILED"
			}
			fmt.Printf("%-5d  %-16s  %-13s  %-26s  %4d/%-4d  %7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("Jan _2 15:04:05"),
				e.Purpose,
				clip(e.Model, 26),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				status,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event ID %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.LLMEvents().GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Printf("Event %d  (%s)\n", e.ID, e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("  provider: %s   model: %s   purpose: %s\n", e.Provider, e.Model, e.Purpose)
		fmt.Printf("  tokens:   %d in / %d out   latency: %dms   success: %v\n",
			e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("  error:    %s\n", e.ErrorMessage)
		}

		printBody := func(label, body string) {
			fmt.Printf("\n--- %s ---\n", label)
			if body == "" {
				fmt.Println("(not captured)")
				return
			}
			fmt.Println(body)
		}
		printBody("request", e.RequestBody)
		printBody("response", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.LLMEvents().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by purpose")
		fmt.Printf("  %-14s  %6s  %10s  %10s  %8s\n", "purpose", "calls", "in", "out", "avg ms")
		var totalCalls, totalIn, totalOut int
		for _, st := range byPurpose {
			fmt.Printf("  %-14s  %6d  %10d  %10d  %8d\n",
				st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.AvgLatencyMs)
			totalCalls += st.Calls
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}
		fmt.Printf("  %-14s  %6d  %10d  %10d\n", "total", totalCalls, totalIn, totalOut)

		byModel, err := s.LLMEvents().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println("\nEstimated cost")
		fmt.Printf("  %-30s  %6s  %10s  %10s  %9s\n", "model", "calls", "in", "out", "cost")
		var totalCost float64
		var unpriced []string
		for _, mu := range byModel {
			pricing := llm.LookupCost(mu.Model)
			if pricing == nil {
				unpriced = append(unpriced, mu.Model)
				fmt.Printf("  %-30s  %6d  %10d  %10d  %9s\n",
					clip(mu.Model, 30), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
				continue
			}
			c := pricing.Cost(mu.InputTokens, mu.OutputTokens)
			totalCost += c
			fmt.Printf("  %-30s  %6d  %10d  %10d  %9s\n",
				clip(mu.Model, 30), mu.Calls, mu.InputTokens, mu.OutputTokens, usd(c))
		}

		label := "total"
		if len(unpriced) > 0 {
			label = "total (partial)"
		}
		fmt.Printf("  %-30s  %6s  %10s  %10s  %9s\n", label, "", "", "", usd(totalCost))
		if len(unpriced) > 0 {
			fmt.Printf("\nNo pricing data for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func usd(v float64) string {
	if v < 0.01 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (lesson, quiz, reassessment, plan)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
