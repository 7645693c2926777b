package pool

import (
	"fmt"
	"math/big"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// LinearPool wraps one underlying (main) token into a pool-bearing token.
// Its own BPT is part of the token list, which is what lets a top-level
// stable pool trade between the BPTs of several linear pools.
type LinearPool struct {
	base
	mainIndex    int
	wrappedIndex int
	lowerTarget  *big.Float
	upperTarget  *big.Float
}

func newLinearPool(raw model.SubgraphPool) (*LinearPool, error) {
	b, err := newBase(raw, TypeLinear)
	if err != nil {
		return nil, err
	}
	if raw.MainIndex < 0 || raw.MainIndex >= len(b.tokens) {
		return nil, fmt.Errorf("pool %s: main index %d out of range", b.id, raw.MainIndex)
	}
	if raw.WrappedIndex < 0 || raw.WrappedIndex >= len(b.tokens) {
		return nil, fmt.Errorf("pool %s: wrapped index %d out of range", b.id, raw.WrappedIndex)
	}
	if !contains(b.list, b.address) {
		return nil, fmt.Errorf("pool %s: token list does not include its own bpt", b.id)
	}
	lowerTarget, err := parseOptionalDecimal(raw.LowerTarget)
	if err != nil {
		return nil, fmt.Errorf("pool %s lower target: %w", b.id, err)
	}
	upperTarget, err := parseOptionalDecimal(raw.UpperTarget)
	if err != nil {
		return nil, fmt.Errorf("pool %s upper target: %w", b.id, err)
	}
	return &LinearPool{
		base:         b,
		mainIndex:    raw.MainIndex,
		wrappedIndex: raw.WrappedIndex,
		lowerTarget:  lowerTarget,
		upperTarget:  upperTarget,
	}, nil
}

// MainToken is the underlying token wrapped by this pool.
func (p *LinearPool) MainToken() string { return p.tokens[p.mainIndex].address }

// WrappedToken is the yield-bearing form of the main token.
func (p *LinearPool) WrappedToken() string { return p.tokens[p.wrappedIndex].address }

// Bpt is the pool-bearing token, equal to the pool address.
func (p *LinearPool) Bpt() string { return p.address }

func (p *LinearPool) PairData(tokenIn, tokenOut string) (PairData, error) {
	return p.pairData(tokenIn, tokenOut)
}

func (p *LinearPool) NormalizedLiquidity(pd PairData) *big.Float {
	return new(big.Float).Set(pd.BalanceOut)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
