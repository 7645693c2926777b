package router

import (
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/lolieatapple/balancer-sor/internal/model"
	"github.com/lolieatapple/balancer-sor/internal/pool"
)

// ClassifyPools walks the raw catalog once, builds typed pools, assigns each
// usable pool a swap role for the tokenIn/tokenOut pair, and derives the set
// of viable hop tokens.
//
// Returned values: poolsOfInterest holds the Direct/HopIn/HopOut pools in
// catalog order, hopTokens is the ordered intersection of the token sets
// reachable from tokenIn and tokenOut, and poolsAll indexes every pool that
// parsed, regardless of role. With maxPools <= 1 no hop roles are assigned
// and hopTokens is empty.
func (r *Router) ClassifyPools(raw []model.SubgraphPool, tokenIn, tokenOut string, maxPools int, blockTimestamp uint64) (*PoolMap, []string, *PoolMap) {
	poolsOfInterest := NewPoolMap()
	poolsAll := NewPoolMap()
	tokenInPaired := newOrderedSet()
	tokenOutPaired := newOrderedSet()

	tokenInLower := strings.ToLower(tokenIn)
	tokenOutLower := strings.ToLower(tokenOut)

	for _, rec := range raw {
		if len(rec.Tokens) == 0 {
			continue
		}
		if zeroBalance(rec.Tokens[0].Balance) {
			r.logger.Debug("skip pool with zero first-token balance", zap.String("pool", rec.ID))
			continue
		}

		p, err := pool.New(rec)
		if err != nil {
			r.logger.Debug("skip unparsable pool", zap.String("pool", rec.ID), zap.Error(err))
			continue
		}
		if ep, ok := p.(*pool.ElementPool); ok {
			ep.SetCurrentBlockTimestamp(blockTimestamp)
		}
		poolsAll.Put(p)

		list := p.TokensList()
		hasIn := contains(list, tokenIn)
		hasOut := contains(list, tokenOut)
		// Direct detection accepts an exact match of both tokens or a
		// both-lowercased match, but not mixed combinations.
		direct := (hasIn && hasOut) ||
			(containsLower(list, tokenInLower) && containsLower(list, tokenOutLower))

		switch {
		case direct:
			// A direct pool is always needed downstream, so derive its pair
			// data now; a pool that cannot produce it is unusable.
			pd, err := p.PairData(tokenIn, tokenOut)
			if err != nil {
				r.logger.Debug("skip direct pool without pair data", zap.String("pool", rec.ID), zap.Error(err))
				continue
			}
			p.SetRole(pool.RoleDirect)
			poolsOfInterest.PutDirect(p, pd)
		case maxPools > 1 && hasIn:
			p.SetRole(pool.RoleHopIn)
			tokenInPaired.addAll(list)
			poolsOfInterest.Put(p)
		case maxPools > 1 && hasOut:
			p.SetRole(pool.RoleHopOut)
			tokenOutPaired.addAll(list)
			poolsOfInterest.Put(p)
		}
	}

	hopTokens := tokenInPaired.intersect(tokenOutPaired)
	return poolsOfInterest, hopTokens, poolsAll
}

func zeroBalance(balance string) bool {
	f, ok := new(big.Float).SetString(balance)
	if !ok {
		// Leave malformed balances to the pool factory.
		return false
	}
	return f.Sign() == 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsLower(list []string, lower string) bool {
	for _, v := range list {
		if strings.ToLower(v) == lower {
			return true
		}
	}
	return false
}

// orderedSet is a string set that remembers insertion order.
type orderedSet struct {
	order []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *orderedSet) addAll(values []string) {
	for _, v := range values {
		s.add(v)
	}
}

func (s *orderedSet) has(v string) bool {
	_, ok := s.seen[v]
	return ok
}

// intersect returns the members also present in other, in the receiver's
// insertion order.
func (s *orderedSet) intersect(other *orderedSet) []string {
	var out []string
	for _, v := range s.order {
		if other.has(v) {
			out = append(out, v)
		}
	}
	return out
}
