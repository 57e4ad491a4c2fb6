package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ernestocullari/audience-pathways/internal/cli"
	"github.com/ernestocullari/audience-pathways/internal/config"
	"github.com/ernestocullari/audience-pathways/internal/history"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent resolution history",
		Long:  `List recent queries and their outcomes from the resolution history store.`,
		RunE:  runHistory,
	}

	cmd.Flags().Int("limit", 20, "maximum entries to show")
	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dbPath := config.HistoryPath()
	if dbPath == "" {
		return fmt.Errorf("history is not configured; set history.db_path")
	}

	store, err := history.NewSQLiteStore(dbPath)
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating history store: %w", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.ListResolutions(ctx, limit)
	if err != nil {
		return fmt.Errorf("listing resolutions: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No resolutions recorded yet."))
		return nil
	}

	fmt.Println(cli.FormatTitle("Resolution History"))
	for _, entry := range entries {
		line := fmt.Sprintf("%s  %-12s  %q", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Outcome, entry.Query)
		fmt.Println(line)
		if entry.TopPathway != "" {
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("    → %s (score %.0f, %s)", entry.TopPathway, entry.TopScore, entry.Confidence)))
		}
	}

	return nil
}
