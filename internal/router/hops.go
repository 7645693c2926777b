package router

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/lolieatapple/balancer-sor/internal/pool"
)

// SelectHopPools emits a direct path for every Direct-role pool and, per hop
// token, a single two-leg path through the best-liquidity HopIn and HopOut
// pools. The returned PoolMap is the subset of poolsOfInterest referenced by
// an emitted path.
func (r *Router) SelectHopPools(tokenIn, tokenOut string, hopTokens []string, poolsOfInterest *PoolMap) (*PoolMap, []*Path) {
	used := NewPoolMap()
	var paths []*Path

	if len(hopTokens) == 0 {
		for _, p := range poolsOfInterest.Pools() {
			if p.Role() != pool.RoleDirect {
				continue
			}
			if path, pd, ok := r.directPath(poolsOfInterest, p, tokenIn, tokenOut); ok {
				paths = append(paths, path)
				used.PutDirect(p, pd)
			}
		}
		return used, paths
	}

	for i, hopToken := range hopTokens {
		bestInLiquidity := big.NewFloat(0)
		bestOutLiquidity := big.NewFloat(0)
		var bestIn, bestOut pool.Pool

		for _, p := range poolsOfInterest.Pools() {
			// Direct paths are emitted while scanning for the first hop
			// token only, so each appears exactly once.
			if i == 0 && p.Role() == pool.RoleDirect {
				if path, pd, ok := r.directPath(poolsOfInterest, p, tokenIn, tokenOut); ok {
					paths = append(paths, path)
					used.PutDirect(p, pd)
				}
				continue
			}
			if !contains(p.TokensList(), hopToken) {
				continue
			}

			switch p.Role() {
			case pool.RoleHopIn:
				pd, err := p.PairData(tokenIn, hopToken)
				if err != nil {
					continue
				}
				// Non-strict comparison: a later pool wins an exact tie.
				if nl := p.NormalizedLiquidity(pd); nl.Cmp(bestInLiquidity) >= 0 {
					bestInLiquidity = nl
					bestIn = p
				}
			case pool.RoleHopOut:
				pd, err := p.PairData(hopToken, tokenOut)
				if err != nil {
					continue
				}
				if nl := p.NormalizedLiquidity(pd); nl.Cmp(bestOutLiquidity) >= 0 {
					bestOutLiquidity = nl
					bestOut = p
				}
			}
		}

		if bestIn == nil || bestOut == nil {
			continue
		}
		path, err := MultihopPath(bestIn, bestOut, tokenIn, hopToken, tokenOut)
		if err != nil {
			r.logger.Warn("drop multihop path",
				zap.String("hopToken", hopToken),
				zap.String("firstPool", bestIn.ID()),
				zap.String("secondPool", bestOut.ID()),
				zap.Error(err),
			)
			continue
		}
		used.Put(bestIn)
		used.Put(bestOut)
		paths = append(paths, path)
	}

	return used, paths
}

// directPath builds a single-leg path for a Direct-role pool, reusing the
// pair data cached during classification when available.
func (r *Router) directPath(m *PoolMap, p pool.Pool, tokenIn, tokenOut string) (*Path, pool.PairData, bool) {
	pd, ok := m.DirectPairData(p.ID())
	if !ok {
		var err error
		pd, err = p.PairData(tokenIn, tokenOut)
		if err != nil {
			r.logger.Warn("drop direct path", zap.String("pool", p.ID()), zap.Error(err))
			return nil, pool.PairData{}, false
		}
	}
	return DirectPath(p, pd), pd, true
}
