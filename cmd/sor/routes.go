package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lolieatapple/balancer-sor/internal/catalog"
	"github.com/lolieatapple/balancer-sor/internal/chain"
	"github.com/lolieatapple/balancer-sor/internal/config"
	"github.com/lolieatapple/balancer-sor/internal/model"
	"github.com/lolieatapple/balancer-sor/internal/router"
	"github.com/lolieatapple/balancer-sor/internal/storage/postgres"
)

func newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Discover candidate swap routes for a token pair",
		RunE:  runRoutes,
	}

	cmd.Flags().String("in", "", "input catalog JSONL (mutually exclusive with --pg-dsn)")
	cmd.Flags().String("pg-dsn", "", "Postgres DSN holding a catalog snapshot")
	cmd.Flags().Uint64("chain-id", 1, "chain id")
	cmd.Flags().String("token-in", "", "input token address")
	cmd.Flags().String("token-out", "", "output token address")
	cmd.Flags().Int("max-pools", 4, "maximum pools per route")
	cmd.Flags().String("pool-type", "All", "restrict catalog to a pool type")
	cmd.Flags().String("rpc", "", "optional RPC URL for the current block timestamp")
	cmd.Flags().String("out", "", "output JSON path, stdout when empty")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

type routesOutput struct {
	TokenIn   string       `json:"tokenIn"`
	TokenOut  string       `json:"tokenOut"`
	HopTokens []string     `json:"hopTokens"`
	Paths     []pathOutput `json:"paths"`
}

type pathOutput struct {
	ID    string        `json:"id"`
	Swaps []router.Swap `json:"swaps"`
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadRoutes(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !common.IsHexAddress(cfg.TokenIn) {
		return fmt.Errorf("token-in is not a valid address: %q", cfg.TokenIn)
	}
	if !common.IsHexAddress(cfg.TokenOut) {
		return fmt.Errorf("token-out is not a valid address: %q", cfg.TokenOut)
	}
	if cfg.Input == "" && cfg.PGDSN == "" {
		return fmt.Errorf("either --in or --pg-dsn is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pools, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	pools = router.FilterPoolsByType(pools, cfg.PoolType)

	blockTimestamp := uint64(time.Now().Unix())
	if cfg.RPCURL != "" {
		chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("connect rpc: %w", err)
		}
		defer chainClient.Close()

		blockTimestamp, err = chainClient.LatestBlockTimestamp(ctx)
		if err != nil {
			return fmt.Errorf("latest block timestamp: %w", err)
		}
	}

	logger.Info("routes start",
		zap.String("token_in", cfg.TokenIn),
		zap.String("token_out", cfg.TokenOut),
		zap.Int("max_pools", cfg.MaxPools),
		zap.String("pool_type", cfg.PoolType),
		zap.Uint64("chain_id", cfg.ChainID),
		zap.Int("catalog_pools", len(pools)),
	)

	r := router.New(nil, logger)
	routes := r.FindCandidatePaths(pools, cfg.TokenIn, cfg.TokenOut, cfg.MaxPools, cfg.ChainID, blockTimestamp)

	out := routesOutput{
		TokenIn:   cfg.TokenIn,
		TokenOut:  cfg.TokenOut,
		HopTokens: routes.HopTokens,
		Paths:     make([]pathOutput, 0, len(routes.Paths)),
	}
	for _, p := range routes.Paths {
		out.Paths = append(out.Paths, pathOutput{ID: p.ID, Swaps: p.Swaps})
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}
	encoded = append(encoded, '\n')

	if cfg.Out != "" {
		if err := os.WriteFile(cfg.Out, encoded, 0o644); err != nil {
			return fmt.Errorf("write routes: %w", err)
		}
		logger.Info("routes written", zap.String("out", cfg.Out), zap.Int("paths", len(out.Paths)))
		return nil
	}

	_, err = os.Stdout.Write(encoded)
	return err
}

func loadCatalog(ctx context.Context, cfg config.RoutesConfig) ([]model.SubgraphPool, error) {
	if cfg.Input != "" {
		pools, err := catalog.ReadFile(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		return pools, nil
	}

	store, err := postgres.NewStore(ctx, cfg.PGDSN)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	defer store.Close()

	pools, err := store.LoadPools(ctx, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return pools, nil
}
