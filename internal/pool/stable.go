package pool

import (
	"fmt"
	"math/big"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// StablePool is an amplified stable-swap pool. Phantom-BPT stable pools
// (the top-level pool of linear routing) carry the same fields and parse
// into this type.
type StablePool struct {
	base
	amp *big.Float
}

func newStablePool(raw model.SubgraphPool) (*StablePool, error) {
	b, err := newBase(raw, TypeStable)
	if err != nil {
		return nil, err
	}
	amp, err := parseDecimal(raw.Amp)
	if err != nil {
		return nil, fmt.Errorf("pool %s amp: %w", b.id, err)
	}
	return &StablePool{base: b, amp: amp}, nil
}

func (p *StablePool) PairData(tokenIn, tokenOut string) (PairData, error) {
	pd, err := p.pairData(tokenIn, tokenOut)
	if err != nil {
		return PairData{}, err
	}
	pd.Amp = p.amp
	return pd, nil
}

// NormalizedLiquidity estimates tradable depth as balanceOut * amp.
func (p *StablePool) NormalizedLiquidity(pd PairData) *big.Float {
	return new(big.Float).Mul(pd.BalanceOut, pd.Amp)
}

// MetaStablePool is a stable pool over yield-bearing tokens; balances are
// scaled to a common basis by each token's price rate.
type MetaStablePool struct {
	base
	amp *big.Float
}

func newMetaStablePool(raw model.SubgraphPool) (*MetaStablePool, error) {
	b, err := newBase(raw, TypeMetaStable)
	if err != nil {
		return nil, err
	}
	amp, err := parseDecimal(raw.Amp)
	if err != nil {
		return nil, fmt.Errorf("pool %s amp: %w", b.id, err)
	}
	return &MetaStablePool{base: b, amp: amp}, nil
}

func (p *MetaStablePool) PairData(tokenIn, tokenOut string) (PairData, error) {
	in, out, err := p.pair(tokenIn, tokenOut)
	if err != nil {
		return PairData{}, err
	}
	pd, err := p.pairData(tokenIn, tokenOut)
	if err != nil {
		return PairData{}, err
	}
	pd.BalanceIn = scaleByRate(in.balance, in.priceRate)
	pd.BalanceOut = scaleByRate(out.balance, out.priceRate)
	pd.Amp = p.amp
	return pd, nil
}

func (p *MetaStablePool) NormalizedLiquidity(pd PairData) *big.Float {
	return new(big.Float).Mul(pd.BalanceOut, pd.Amp)
}

func scaleByRate(balance, rate *big.Float) *big.Float {
	if rate == nil {
		return balance
	}
	return new(big.Float).Mul(balance, rate)
}
