package router

import (
	"go.uber.org/zap"

	"github.com/lolieatapple/balancer-sor/internal/pool"
)

// ChainConfig is the static per-chain routing configuration.
type ChainConfig struct {
	// StablePoolID identifies the top-level stable pool trading between the
	// BPTs of the chain's linear pools. Empty when the chain has no linear
	// routing deployment.
	StablePoolID string
}

// DefaultChainConfigs returns the known linear-routing deployments.
func DefaultChainConfigs() map[uint64]ChainConfig {
	return map[uint64]ChainConfig{
		// Mainnet bb-a-USD.
		1: {StablePoolID: "0x7b50775383d3d6f0215a8f290f2c9e2eebbeceb20000000000000000000000fe"},
		// Goerli bb-a-USD.
		5: {StablePoolID: "0x13acd41c585d7ebb4a9460f7c8f50be60dc080cd00000000000000000000005f"},
	}
}

// BuildLinearPaths builds routes for tokens whose liquidity sits behind a
// linear wrapping pool feeding the chain's top-level stable pool. It returns
// nil when the chain has no such deployment or neither token has a linear
// pool.
func (r *Router) BuildLinearPaths(tokenIn, tokenOut string, poolsAll, poolsOfInterest *PoolMap, chainID uint64) []*Path {
	cfg, ok := r.chains[chainID]
	if !ok || cfg.StablePoolID == "" {
		return nil
	}
	stablePool, ok := poolsAll.Get(cfg.StablePoolID)
	if !ok {
		return nil
	}

	// Index linear pools by main token, insertion order, first one wins.
	var mains []string
	linearByMain := make(map[string]*pool.LinearPool)
	for _, p := range poolsAll.Pools() {
		lp, ok := p.(*pool.LinearPool)
		if !ok {
			continue
		}
		if _, dup := linearByMain[lp.MainToken()]; dup {
			continue
		}
		linearByMain[lp.MainToken()] = lp
		mains = append(mains, lp.MainToken())
	}

	linearIn := linearByMain[tokenIn]
	linearOut := linearByMain[tokenOut]

	switch {
	case linearIn != nil && linearOut != nil:
		path, err := NewPath(
			[]string{tokenIn, linearIn.Bpt(), linearOut.Bpt(), tokenOut},
			[]pool.Pool{linearIn, stablePool, linearOut},
		)
		if err != nil {
			r.logger.Warn("drop linear path", zap.String("tokenIn", tokenIn), zap.String("tokenOut", tokenOut), zap.Error(err))
			return nil
		}
		return []*Path{path}

	case linearIn != nil:
		var paths []*Path
		for _, main := range mains {
			if main == tokenIn {
				continue
			}
			exit := linearByMain[main]
			hopOut := BestLiquidityPool(main, tokenOut, pool.RoleHopOut, poolsOfInterest)
			if hopOut == nil {
				continue
			}
			pathway, err := NewPath(
				[]string{tokenIn, linearIn.Bpt(), exit.Bpt(), main},
				[]pool.Pool{linearIn, stablePool, exit},
			)
			if err != nil {
				r.logger.Debug("skip linear pathway", zap.String("main", main), zap.Error(err))
				continue
			}
			lastLeg, err := NewPath([]string{main, tokenOut}, []pool.Pool{hopOut})
			if err != nil {
				r.logger.Debug("skip linear exit leg", zap.String("main", main), zap.Error(err))
				continue
			}
			paths = append(paths, ComposePaths(pathway, lastLeg))
		}
		return paths

	case linearOut != nil:
		var paths []*Path
		for _, main := range mains {
			if main == tokenOut {
				continue
			}
			entry := linearByMain[main]
			hopIn := BestLiquidityPool(tokenIn, main, pool.RoleHopIn, poolsOfInterest)
			if hopIn == nil {
				continue
			}
			firstLeg, err := NewPath([]string{tokenIn, main}, []pool.Pool{hopIn})
			if err != nil {
				r.logger.Debug("skip linear entry leg", zap.String("main", main), zap.Error(err))
				continue
			}
			pathway, err := NewPath(
				[]string{main, entry.Bpt(), linearOut.Bpt(), tokenOut},
				[]pool.Pool{entry, stablePool, linearOut},
			)
			if err != nil {
				r.logger.Debug("skip linear pathway", zap.String("main", main), zap.Error(err))
				continue
			}
			paths = append(paths, ComposePaths(firstLeg, pathway))
		}
		return paths
	}

	return nil
}
