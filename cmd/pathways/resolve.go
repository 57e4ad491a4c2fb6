package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ernestocullari/audience-pathways/internal/cli"
	"github.com/ernestocullari/audience-pathways/internal/tui"
)

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [query]",
		Short: "Resolve an audience description to targeting pathways",
		Long: `Resolve a free-text audience description against the taxonomy sheet and
print the ranked pathways.

Examples:
  pathways resolve "car enthusiasts"
  pathways resolve --sheet Q3Taxonomy "new parents with high income"
  pathways resolve --interactive`,
		RunE: runResolve,
	}

	cmd.Flags().String("sheet", "", "taxonomy sheet tab to search (default from config)")
	cmd.Flags().BoolP("interactive", "i", false, "open the interactive resolver")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fetcher, sheetsCfg, err := buildFetcher(ctx)
	if err != nil {
		return err
	}

	sheet, _ := cmd.Flags().GetString("sheet")
	if sheet == "" {
		sheet = sheetsCfg.SheetName
	}

	engine := buildEngine()

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return tui.Run(fetcher, engine, sheet)
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("query is required (or pass --interactive)")
	}

	dataset, err := fetcher.Fetch(ctx, sheet)
	if err != nil {
		return fmt.Errorf("fetching taxonomy: %w", err)
	}

	result := engine.Resolve(query, dataset)
	fmt.Print(cli.FormatResolution(&result))
	return nil
}
