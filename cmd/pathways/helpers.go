package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ernestocullari/audience-pathways/internal/config"
	"github.com/ernestocullari/audience-pathways/internal/resolver"
	"github.com/ernestocullari/audience-pathways/internal/sheets"
)

// buildFetcher constructs the Google Sheets fetcher from configuration.
func buildFetcher(ctx context.Context) (*sheets.Fetcher, *sheets.Config, error) {
	cfg, err := config.LoadSheetsConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading sheets config: %w", err)
	}

	fetcher, err := sheets.NewFetcher(ctx, *cfg, slog.Default())
	if err != nil {
		return nil, nil, fmt.Errorf("creating sheets fetcher: %w", err)
	}

	return fetcher, cfg, nil
}

// buildEngine constructs the resolution engine from configuration.
func buildEngine() *resolver.Engine {
	return resolver.New(config.LoadResolverConfig(), nil, slog.Default())
}
