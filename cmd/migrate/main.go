// Command migrate prepares and inspects the optional chat log database.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"ironlady-chat/internal/models"
	"ironlady-chat/internal/repository"
	"ironlady-chat/pkg/config"
	"ironlady-chat/pkg/logger"
	"ironlady-chat/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the chat log database",
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create the chat_logs table if it is missing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, db *pgxpool.Pool, log *zap.Logger) error {
			if err := postgres.EnsureSchema(ctx, db); err != nil {
				return err
			}
			log.Info("Chat log schema is up to date")
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print how many replies each path produced",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, db *pgxpool.Pool, log *zap.Logger) error {
			counts, err := repository.NewChatLogRepository(db, log).CountBySource(ctx)
			if err != nil {
				return err
			}
			for _, line := range formatCounts(counts) {
				cmd.Println(line)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(upCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func withPool(ctx context.Context, fn func(context.Context, *pgxpool.Pool, *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db, appLogger)
}

// formatCounts lists every known source, including ones with no rows yet.
func formatCounts(counts map[models.ReplySource]int64) []string {
	sources := []models.ReplySource{models.SourceFAQ, models.SourceLLM, models.SourceFallback}
	seen := make(map[models.ReplySource]bool, len(sources))
	for _, s := range sources {
		seen[s] = true
	}

	var extra []string
	for s := range counts {
		if !seen[s] {
			extra = append(extra, string(s))
		}
	}
	sort.Strings(extra)
	for _, s := range extra {
		sources = append(sources, models.ReplySource(s))
	}

	lines := make([]string, 0, len(sources))
	var total int64
	for _, s := range sources {
		lines = append(lines, fmt.Sprintf("%-8s %d", s, counts[s]))
		total += counts[s]
	}
	return append(lines, fmt.Sprintf("%-8s %d", "total", total))
}
