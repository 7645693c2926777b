package router

import (
	"fmt"
	"math/big"

	"github.com/lolieatapple/balancer-sor/internal/pool"
)

// Swap is one leg of a route.
type Swap struct {
	Pool             string `json:"pool"`
	TokenIn          string `json:"tokenIn"`
	TokenOut         string `json:"tokenOut"`
	TokenInDecimals  uint8  `json:"tokenInDecimals"`
	TokenOutDecimals uint8  `json:"tokenOutDecimals"`
}

// Path is an ordered, leg-chainable route from a source token to a
// destination token. Its identity is the ordered concatenation of the
// participating pool ids. Limit starts at zero; the downstream amount
// optimizer fills it in.
type Path struct {
	ID       string
	Swaps    []Swap
	PairData []pool.PairData
	Pools    []pool.Pool
	Limit    *big.Float
}

// NewPath builds a path from a token chain and the pool serving each leg.
// tokens must hold exactly one more element than pools; consecutive legs
// chain by construction.
func NewPath(tokens []string, pools []pool.Pool) (*Path, error) {
	if len(tokens) != len(pools)+1 {
		return nil, fmt.Errorf("path needs %d tokens for %d pools, got %d", len(pools)+1, len(pools), len(tokens))
	}

	path := &Path{Limit: big.NewFloat(0)}
	for i, p := range pools {
		pd, err := p.PairData(tokens[i], tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		path.ID += p.ID()
		path.Swaps = append(path.Swaps, Swap{
			Pool:             p.ID(),
			TokenIn:          tokens[i],
			TokenOut:         tokens[i+1],
			TokenInDecimals:  pd.DecimalsIn,
			TokenOutDecimals: pd.DecimalsOut,
		})
		path.PairData = append(path.PairData, pd)
		path.Pools = append(path.Pools, p)
	}
	return path, nil
}

// DirectPath builds a single-leg path from already derived pair data.
func DirectPath(p pool.Pool, pd pool.PairData) *Path {
	return &Path{
		ID: p.ID(),
		Swaps: []Swap{{
			Pool:             p.ID(),
			TokenIn:          pd.TokenIn,
			TokenOut:         pd.TokenOut,
			TokenInDecimals:  pd.DecimalsIn,
			TokenOutDecimals: pd.DecimalsOut,
		}},
		PairData: []pool.PairData{pd},
		Pools:    []pool.Pool{p},
		Limit:    big.NewFloat(0),
	}
}

// MultihopPath builds the two-leg path tokenIn -> hopToken -> tokenOut.
// The id is first.ID + second.ID, order-sensitive.
func MultihopPath(first, second pool.Pool, tokenIn, hopToken, tokenOut string) (*Path, error) {
	return NewPath([]string{tokenIn, hopToken, tokenOut}, []pool.Pool{first, second})
}

// ComposePaths concatenates already leg-compatible sub-paths into one path.
// Chainability is the caller's responsibility.
func ComposePaths(subpaths ...*Path) *Path {
	out := &Path{Limit: big.NewFloat(0)}
	for _, sp := range subpaths {
		out.ID += sp.ID
		out.Swaps = append(out.Swaps, sp.Swaps...)
		out.PairData = append(out.PairData, sp.PairData...)
		out.Pools = append(out.Pools, sp.Pools...)
	}
	return out
}

// BestLiquidityPool scans pools of the given role containing both tokens
// and returns the one with the highest normalized liquidity; exact ties go
// to the later-iterated pool. Returns nil when no pool qualifies.
func BestLiquidityPool(tokenIn, tokenOut string, role pool.SwapRole, pools *PoolMap) pool.Pool {
	best := big.NewFloat(0)
	var bestPool pool.Pool
	for _, p := range pools.Pools() {
		if p.Role() != role {
			continue
		}
		list := p.TokensList()
		if !contains(list, tokenIn) || !contains(list, tokenOut) {
			continue
		}
		pd, err := p.PairData(tokenIn, tokenOut)
		if err != nil {
			continue
		}
		nl := p.NormalizedLiquidity(pd)
		if nl.Cmp(best) >= 0 {
			best = nl
			bestPool = p
		}
	}
	return bestPool
}
