package router

import (
	"reflect"
	"testing"

	"github.com/lolieatapple/balancer-sor/internal/model"
	"github.com/lolieatapple/balancer-sor/internal/pool"
)

func TestClassifyHopScenario(t *testing.T) {
	r := New(nil, nil)
	raw := []model.SubgraphPool{
		rawWeighted("A", rawToken{"X", "100"}, rawToken{"Y", "100"}),
		rawWeighted("B", rawToken{"Y", "100"}, rawToken{"Z", "100"}),
	}

	poolsOfInterest, hopTokens, poolsAll := r.ClassifyPools(raw, "X", "Z", 4, 0)

	if poolsAll.Len() != 2 {
		t.Fatalf("poolsAll size: %d != 2", poolsAll.Len())
	}
	a, ok := poolsOfInterest.Get("A")
	if !ok || a.Role() != pool.RoleHopIn {
		t.Fatalf("pool A should be HopIn, got %v (found=%v)", a, ok)
	}
	b, ok := poolsOfInterest.Get("B")
	if !ok || b.Role() != pool.RoleHopOut {
		t.Fatalf("pool B should be HopOut, got %v (found=%v)", b, ok)
	}
	if !reflect.DeepEqual(hopTokens, []string{"Y"}) {
		t.Fatalf("hop tokens: %v != [Y]", hopTokens)
	}
}

func TestClassifyDirectPool(t *testing.T) {
	r := New(nil, nil)
	raw := []model.SubgraphPool{
		rawWeighted("A", rawToken{"X", "100"}, rawToken{"Y", "100"}),
		rawWeighted("B", rawToken{"Y", "100"}, rawToken{"Z", "100"}),
		rawWeighted("C", rawToken{"X", "100"}, rawToken{"Z", "100"}),
	}

	poolsOfInterest, hopTokens, _ := r.ClassifyPools(raw, "X", "Z", 4, 0)

	c, ok := poolsOfInterest.Get("C")
	if !ok || c.Role() != pool.RoleDirect {
		t.Fatalf("pool C should be Direct")
	}
	pd, ok := poolsOfInterest.DirectPairData("C")
	if !ok {
		t.Fatalf("direct pair data should be cached")
	}
	if pd.TokenIn != "X" || pd.TokenOut != "Z" {
		t.Fatalf("cached pair data mismatch: %+v", pd)
	}
	if !reflect.DeepEqual(hopTokens, []string{"Y"}) {
		t.Fatalf("hop tokens: %v != [Y]", hopTokens)
	}
}

func TestClassifySkipsDegeneratePools(t *testing.T) {
	r := New(nil, nil)
	empty := model.SubgraphPool{ID: "E", PoolType: "Weighted", SwapFee: "0.003"}
	zero := rawWeighted("Z0", rawToken{"X", "0"}, rawToken{"Z", "100"})
	unsupported := rawWeighted("G", rawToken{"X", "100"}, rawToken{"Z", "100"})
	unsupported.PoolType = "Gyro2"

	poolsOfInterest, _, poolsAll := r.ClassifyPools(
		[]model.SubgraphPool{empty, zero, unsupported}, "X", "Z", 4, 0)

	if poolsAll.Len() != 0 {
		t.Fatalf("degenerate pools leaked into poolsAll: %v", poolsAll.IDs())
	}
	if poolsOfInterest.Len() != 0 {
		t.Fatalf("degenerate pools leaked into poolsOfInterest: %v", poolsOfInterest.IDs())
	}
}

func TestClassifyMaxPoolsOne(t *testing.T) {
	r := New(nil, nil)
	raw := []model.SubgraphPool{
		rawWeighted("A", rawToken{"X", "100"}, rawToken{"Y", "100"}),
		rawWeighted("B", rawToken{"Y", "100"}, rawToken{"Z", "100"}),
		rawWeighted("C", rawToken{"X", "100"}, rawToken{"Z", "100"}),
	}

	poolsOfInterest, hopTokens, _ := r.ClassifyPools(raw, "X", "Z", 1, 0)

	if len(hopTokens) != 0 {
		t.Fatalf("maxPools <= 1 must yield no hop tokens, got %v", hopTokens)
	}
	if !reflect.DeepEqual(poolsOfInterest.IDs(), []string{"C"}) {
		t.Fatalf("only the direct pool should remain, got %v", poolsOfInterest.IDs())
	}
}

func TestClassifyHopTokenIntersectionOrder(t *testing.T) {
	r := New(nil, nil)
	raw := []model.SubgraphPool{
		rawWeighted("A", rawToken{"X", "100"}, rawToken{"Y", "100"}, rawToken{"W", "100"}),
		rawWeighted("B", rawToken{"Y", "100"}, rawToken{"Z", "100"}, rawToken{"W", "100"}),
	}

	_, hopTokens, _ := r.ClassifyPools(raw, "X", "Z", 4, 0)

	// Intersection in the tokenIn-side insertion order: X is unreachable
	// from the tokenOut side, so only Y then W remain.
	if !reflect.DeepEqual(hopTokens, []string{"Y", "W"}) {
		t.Fatalf("hop tokens: %v != [Y W]", hopTokens)
	}
}

func TestClassifyLowercasedDirectDetection(t *testing.T) {
	r := New(nil, nil)
	// Token list matches the request pair only when both sides are
	// lowercased; the exact-case pair lookup then fails, so the pool is
	// dropped from the role index but still parses into poolsAll.
	mixed := rawWeighted("M", rawToken{"0xAAA", "100"}, rawToken{"0xBBB", "100"})

	poolsOfInterest, _, poolsAll := r.ClassifyPools(
		[]model.SubgraphPool{mixed}, "0xaaa", "0xbbb", 4, 0)

	if _, ok := poolsAll.Get("M"); !ok {
		t.Fatalf("pool should still be indexed in poolsAll")
	}
	if poolsOfInterest.Len() != 0 {
		t.Fatalf("mixed-case direct pool should not be usable, got %v", poolsOfInterest.IDs())
	}
}

func TestClassifyIdempotent(t *testing.T) {
	r := New(nil, nil)
	raw := []model.SubgraphPool{
		rawWeighted("A", rawToken{"X", "100"}, rawToken{"Y", "100"}),
		rawWeighted("B", rawToken{"Y", "100"}, rawToken{"Z", "100"}),
		rawWeighted("C", rawToken{"X", "100"}, rawToken{"Z", "100"}),
	}

	first, firstHops, firstAll := r.ClassifyPools(raw, "X", "Z", 4, 0)
	second, secondHops, secondAll := r.ClassifyPools(raw, "X", "Z", 4, 0)

	if !reflect.DeepEqual(first.IDs(), second.IDs()) {
		t.Fatalf("poolsOfInterest order differs: %v != %v", first.IDs(), second.IDs())
	}
	if !reflect.DeepEqual(firstHops, secondHops) {
		t.Fatalf("hop tokens differ: %v != %v", firstHops, secondHops)
	}
	if !reflect.DeepEqual(firstAll.IDs(), secondAll.IDs()) {
		t.Fatalf("poolsAll order differs: %v != %v", firstAll.IDs(), secondAll.IDs())
	}
	for _, id := range first.IDs() {
		a, _ := first.Get(id)
		b, _ := second.Get(id)
		if a.Role() != b.Role() {
			t.Fatalf("role differs for %s: %v != %v", id, a.Role(), b.Role())
		}
	}
}
