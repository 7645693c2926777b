package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lolieatapple/balancer-sor/internal/catalog"
	"github.com/lolieatapple/balancer-sor/internal/config"
	"github.com/lolieatapple/balancer-sor/internal/storage/postgres"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the pool catalog from a subgraph",
		RunE:  runFetch,
	}

	cmd.Flags().String("subgraph-url", "", "Balancer subgraph endpoint")
	cmd.Flags().Uint64("chain-id", 1, "chain id for the catalog")
	cmd.Flags().String("out", "./data/pools.jsonl", "output JSONL path")
	cmd.Flags().String("pg-dsn", "", "optional Postgres DSN for catalog snapshots")
	cmd.Flags().Int("page-size", 1000, "pools per subgraph page")
	cmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFetch(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.SubgraphURL == "" {
		return fmt.Errorf("subgraph url is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := catalog.NewSubgraphClient(catalog.SubgraphConfig{
		URL:          cfg.SubgraphURL,
		PageSize:     cfg.PageSize,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("fetch start",
		zap.String("subgraph_url", cfg.SubgraphURL),
		zap.Uint64("chain_id", cfg.ChainID),
		zap.String("out", cfg.Out),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.Int("page_size", cfg.PageSize),
	)

	pools, err := client.FetchPools(ctx)
	if err != nil {
		return fmt.Errorf("fetch pools: %w", err)
	}
	logger.Info("catalog fetched", zap.Int("pools", len(pools)))

	if cfg.Out != "" {
		if err := catalog.WriteFile(cfg.Out, pools); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		logger.Info("catalog written", zap.String("out", cfg.Out))
	}

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		if err := store.UpsertPools(ctx, cfg.ChainID, pools); err != nil {
			return fmt.Errorf("upsert pools: %w", err)
		}
		logger.Info("catalog stored", zap.Uint64("chain_id", cfg.ChainID))
	}

	return nil
}
