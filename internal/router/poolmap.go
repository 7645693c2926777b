package router

import (
	"github.com/lolieatapple/balancer-sor/internal/pool"
)

// PoolMap is an insertion-ordered pool index. Iteration order drives the
// liquidity tie-break and the first-iteration handling of route selection,
// so it must stay reproducible; a plain map would not be.
type PoolMap struct {
	order []string
	items map[string]*poolEntry
}

type poolEntry struct {
	pool   pool.Pool
	direct *pool.PairData
}

func NewPoolMap() *PoolMap {
	return &PoolMap{items: make(map[string]*poolEntry)}
}

// Put records a pool, keeping the first insertion position on repeats.
func (m *PoolMap) Put(p pool.Pool) {
	if _, ok := m.items[p.ID()]; ok {
		return
	}
	m.order = append(m.order, p.ID())
	m.items[p.ID()] = &poolEntry{pool: p}
}

// PutDirect records a Direct-role pool together with its eagerly derived
// pair data.
func (m *PoolMap) PutDirect(p pool.Pool, pd pool.PairData) {
	if e, ok := m.items[p.ID()]; ok {
		e.direct = &pd
		return
	}
	m.order = append(m.order, p.ID())
	m.items[p.ID()] = &poolEntry{pool: p, direct: &pd}
}

func (m *PoolMap) Get(id string) (pool.Pool, bool) {
	e, ok := m.items[id]
	if !ok {
		return nil, false
	}
	return e.pool, true
}

// DirectPairData returns the cached tokenIn/tokenOut pair data of a
// Direct-role pool, when present.
func (m *PoolMap) DirectPairData(id string) (pool.PairData, bool) {
	e, ok := m.items[id]
	if !ok || e.direct == nil {
		return pool.PairData{}, false
	}
	return *e.direct, true
}

func (m *PoolMap) Len() int { return len(m.order) }

// IDs returns pool ids in insertion order.
func (m *PoolMap) IDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Pools returns pools in insertion order.
func (m *PoolMap) Pools() []pool.Pool {
	out := make([]pool.Pool, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id].pool)
	}
	return out
}
