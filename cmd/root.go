package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lexio",
	Short: "Adaptive language tutor core",
	Long:  "Lexio — adaptive-learning engine for language tutoring: spaced repetition, learner profiling, proficiency tracking, and session artifact generation.",
}

func Execute() error {
	// A local .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIO_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (overrides LEXIO_LEARNER env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(factCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(observeCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEXIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database for a command run.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// learnerID resolves the learner the command operates on.
func learnerID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("learner"); id != "" {
		return id
	}
	if id := os.Getenv("LEXIO_LEARNER"); id != "" {
		return id
	}
	return "default"
}

// newProvider builds the configured LLM provider with event logging
// wired to the store.
func newProvider(ctx context.Context, s *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set LEXIO_LLM_PROVIDER and the matching API key")
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, s.LLMEvents())
}
