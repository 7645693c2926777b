package pool

import (
	"fmt"
	"math/big"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// WeightedPool is a constant-weight pool. LiquidityBootstrapping and
// Investment pools share the weighted math and parse into this type.
type WeightedPool struct {
	base
}

func newWeightedPool(raw model.SubgraphPool) (*WeightedPool, error) {
	b, err := newBase(raw, TypeWeighted)
	if err != nil {
		return nil, err
	}
	for _, t := range b.tokens {
		if t.weight == nil {
			return nil, fmt.Errorf("pool %s: token %s has no weight", b.id, t.address)
		}
	}
	return &WeightedPool{base: b}, nil
}

func (p *WeightedPool) PairData(tokenIn, tokenOut string) (PairData, error) {
	in, out, err := p.pair(tokenIn, tokenOut)
	if err != nil {
		return PairData{}, err
	}
	pd, err := p.pairData(tokenIn, tokenOut)
	if err != nil {
		return PairData{}, err
	}
	pd.WeightIn = in.weight
	pd.WeightOut = out.weight
	return pd, nil
}

// NormalizedLiquidity estimates tradable depth as
// balanceOut * weightIn / (weightIn + weightOut).
func (p *WeightedPool) NormalizedLiquidity(pd PairData) *big.Float {
	den := new(big.Float).Add(pd.WeightIn, pd.WeightOut)
	if den.Sign() == 0 {
		return big.NewFloat(0)
	}
	nl := new(big.Float).Mul(pd.BalanceOut, pd.WeightIn)
	return nl.Quo(nl, den)
}
