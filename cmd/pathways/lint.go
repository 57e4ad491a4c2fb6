package main

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ernestocullari/audience-pathways/internal/cli"
	"github.com/ernestocullari/audience-pathways/internal/model"
	"github.com/ernestocullari/audience-pathways/internal/resolver"
)

func lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the taxonomy sheet for structural problems",
		Long: `Fetch the taxonomy sheet and report problems that would degrade
resolution quality: missing role columns, empty cells, and duplicate
pathways.`,
		RunE: runLint,
	}

	cmd.Flags().String("sheet", "", "taxonomy sheet tab to lint (default from config)")
	return cmd
}

func runLint(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	fetcher, sheetsCfg, err := buildFetcher(ctx)
	if err != nil {
		return err
	}

	sheet, _ := cmd.Flags().GetString("sheet")
	if sheet == "" {
		sheet = sheetsCfg.SheetName
	}

	dataset, err := fetcher.Fetch(ctx, sheet)
	if err != nil {
		return fmt.Errorf("fetching taxonomy: %w", err)
	}

	fmt.Println(cli.FormatTitle("Taxonomy Lint: " + sheet))

	columns, missing := resolver.ResolveColumns(dataset.Headers)
	if len(missing) > 0 {
		cols := make([]string, 0, len(missing))
		for _, c := range missing {
			cols = append(cols, string(c))
		}
		fmt.Println(cli.FormatError("missing required columns: " + strings.Join(cols, ", ")))
		return fmt.Errorf("taxonomy sheet is unusable")
	}
	fmt.Println(cli.FormatSuccess("all four role columns resolved"))

	if dataset.Empty() {
		fmt.Println(cli.FormatError("sheet has no data rows"))
		return fmt.Errorf("taxonomy sheet is empty")
	}

	emptyCells := make(map[model.ColumnRole]int)
	duplicates := 0
	seen := make(map[string]bool)

	bar := progressbar.Default(int64(len(dataset.Rows)), "scanning rows")
	for i := range dataset.Rows {
		for _, role := range model.RequiredRoles {
			if strings.TrimSpace(dataset.Cell(i, columns[role])) == "" {
				emptyCells[role]++
			}
		}

		pathway := model.Pathway{
			Category:    dataset.Cell(i, columns[model.RoleCategory]),
			Grouping:    dataset.Cell(i, columns[model.RoleGrouping]),
			Demographic: dataset.Cell(i, columns[model.RoleDemographic]),
		}
		key := strings.ToLower(pathway.String())
		if seen[key] {
			duplicates++
		}
		seen[key] = true

		_ = bar.Add(1)
	}

	fmt.Println()
	fmt.Printf("rows: %d\n", len(dataset.Rows))
	for _, role := range model.RequiredRoles {
		if n := emptyCells[role]; n > 0 {
			fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("%s: %d empty cell(s)", role, n)))
		}
	}
	if duplicates > 0 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("duplicate pathways: %d", duplicates)))
	} else {
		fmt.Println(cli.FormatSuccess("no duplicate pathways"))
	}

	return nil
}
