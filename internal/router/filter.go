package router

import (
	"strings"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// PoolFilterAll keeps every pool regardless of declared type.
const PoolFilterAll = "All"

// FilterPoolsByType returns the pools whose declared type equals the
// filter. The "All" filter (any case) keeps everything.
func FilterPoolsByType(pools []model.SubgraphPool, filter string) []model.SubgraphPool {
	if strings.EqualFold(filter, PoolFilterAll) {
		return pools
	}
	out := make([]model.SubgraphPool, 0, len(pools))
	for _, p := range pools {
		if p.PoolType == filter {
			out = append(out, p)
		}
	}
	return out
}
