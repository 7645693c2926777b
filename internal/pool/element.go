package pool

import (
	"math/big"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// ElementPool is a fixed-term yield pool. Its pricing depends on time to
// expiry, so the classifier stamps it with the block timestamp of the
// routing request.
type ElementPool struct {
	base
	expiryTime     int64
	unitSeconds    int64
	principalToken string
	baseToken      string

	currentBlockTimestamp uint64
}

func newElementPool(raw model.SubgraphPool) (*ElementPool, error) {
	b, err := newBase(raw, TypeElement)
	if err != nil {
		return nil, err
	}
	return &ElementPool{
		base:           b,
		expiryTime:     raw.ExpiryTime,
		unitSeconds:    raw.UnitSeconds,
		principalToken: raw.PrincipalToken,
		baseToken:      raw.BaseToken,
	}, nil
}

// SetCurrentBlockTimestamp records the request's block timestamp.
func (p *ElementPool) SetCurrentBlockTimestamp(ts uint64) {
	p.currentBlockTimestamp = ts
}

func (p *ElementPool) CurrentBlockTimestamp() uint64 { return p.currentBlockTimestamp }

func (p *ElementPool) PairData(tokenIn, tokenOut string) (PairData, error) {
	return p.pairData(tokenIn, tokenOut)
}

func (p *ElementPool) NormalizedLiquidity(pd PairData) *big.Float {
	return new(big.Float).Set(pd.BalanceOut)
}
