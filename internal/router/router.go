package router

import (
	"go.uber.org/zap"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// Router discovers candidate swap routes over a pool catalog snapshot. It
// holds only read-only configuration, so one Router serves concurrent
// requests; all per-request state lives in the call.
type Router struct {
	chains map[uint64]ChainConfig
	logger *zap.Logger
}

// New builds a Router. A nil chains map falls back to the known deployments
// and a nil logger disables logging.
func New(chains map[uint64]ChainConfig, logger *zap.Logger) *Router {
	if chains == nil {
		chains = DefaultChainConfigs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{chains: chains, logger: logger}
}

// CandidateRoutes is the discovery output handed to the downstream amount
// optimizer.
type CandidateRoutes struct {
	Paths     []*Path
	HopTokens []string
	Pools     *PoolMap // pools referenced by at least one path
	AllPools  *PoolMap // every parsed pool, keyed by id
}

// FindCandidatePaths runs classification, hop selection, and linear routing
// for one token pair over a raw catalog snapshot and merges the results.
func (r *Router) FindCandidatePaths(raw []model.SubgraphPool, tokenIn, tokenOut string, maxPools int, chainID uint64, blockTimestamp uint64) CandidateRoutes {
	poolsOfInterest, hopTokens, poolsAll := r.ClassifyPools(raw, tokenIn, tokenOut, maxPools, blockTimestamp)
	used, paths := r.SelectHopPools(tokenIn, tokenOut, hopTokens, poolsOfInterest)

	linearPaths := r.BuildLinearPaths(tokenIn, tokenOut, poolsAll, poolsOfInterest, chainID)
	for _, lp := range linearPaths {
		for _, p := range lp.Pools {
			used.Put(p)
		}
	}
	paths = append(paths, linearPaths...)

	r.logger.Debug("candidate paths",
		zap.String("tokenIn", tokenIn),
		zap.String("tokenOut", tokenOut),
		zap.Int("hopTokens", len(hopTokens)),
		zap.Int("paths", len(paths)),
		zap.Int("pools", used.Len()),
	)

	return CandidateRoutes{
		Paths:     paths,
		HopTokens: hopTokens,
		Pools:     used,
		AllPools:  poolsAll,
	}
}
