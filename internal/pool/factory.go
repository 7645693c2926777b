package pool

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// ErrUnsupportedPoolType marks a raw record whose declared type has no
// constructor. Callers skip such records.
var ErrUnsupportedPoolType = errors.New("unsupported pool type")

// New builds a typed pool from a raw catalog record, dispatching on the
// declared pool type tag.
func New(raw model.SubgraphPool) (Pool, error) {
	switch raw.PoolType {
	case "Weighted", "LiquidityBootstrapping", "Investment":
		return newWeightedPool(raw)
	case "Stable", "StablePhantom", "ComposableStable":
		return newStablePool(raw)
	case "MetaStable":
		return newMetaStablePool(raw)
	case "Element":
		return newElementPool(raw)
	default:
		if strings.HasSuffix(raw.PoolType, "Linear") {
			return newLinearPool(raw)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPoolType, raw.PoolType)
	}
}
