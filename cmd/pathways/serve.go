package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ernestocullari/audience-pathways/internal/agent"
	"github.com/ernestocullari/audience-pathways/internal/config"
	"github.com/ernestocullari/audience-pathways/internal/history"
	"github.com/ernestocullari/audience-pathways/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP resolution service",
		Long: `Start the HTTP server that resolves audience descriptions against the
taxonomy sheet and proxies chat messages to the hosted agent framework.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	fetcher, _, err := buildFetcher(ctx)
	if err != nil {
		return err
	}

	serverCfg := config.LoadServerConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		serverCfg.Addr = addr
	}

	var opts []server.Option

	if agentCfg := config.LoadAgentConfig(); agentCfg != nil {
		client, clientErr := agent.NewClient(*agentCfg)
		if clientErr != nil {
			return fmt.Errorf("creating agent client: %w", clientErr)
		}
		opts = append(opts, server.WithAgent(client))
		slog.Info("agent proxy enabled", "endpoint", agentCfg.Endpoint)
	}

	if dbPath := config.HistoryPath(); dbPath != "" {
		store, storeErr := history.NewSQLiteStore(dbPath)
		if storeErr != nil {
			return fmt.Errorf("opening history store: %w", storeErr)
		}
		defer func() { _ = store.Close() }()

		if migrateErr := store.Migrate(ctx); migrateErr != nil {
			return fmt.Errorf("migrating history store: %w", migrateErr)
		}
		opts = append(opts, server.WithHistory(store))
		slog.Info("resolution history enabled", "db_path", dbPath)
	}

	srv := server.New(serverCfg, fetcher, buildEngine(), slog.Default(), opts...)
	return srv.Run(ctx)
}
