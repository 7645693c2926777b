package router

import (
	"reflect"
	"testing"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

func TestFindCandidatePaths(t *testing.T) {
	r := New(nil, nil)
	raw := []model.SubgraphPool{
		rawWeighted("A", rawToken{"X", "100"}, rawToken{"Y", "100"}),
		rawWeighted("B", rawToken{"Y", "100"}, rawToken{"Z", "100"}),
		rawWeighted("C", rawToken{"X", "100"}, rawToken{"Z", "100"}),
	}

	routes := r.FindCandidatePaths(raw, "X", "Z", 4, testChainID, 0)

	ids := make([]string, len(routes.Paths))
	for i, p := range routes.Paths {
		ids[i] = p.ID
		assertChainable(t, p)
	}
	if !reflect.DeepEqual(ids, []string{"C", "AB"}) {
		t.Fatalf("path ids: %v", ids)
	}
	if !reflect.DeepEqual(routes.HopTokens, []string{"Y"}) {
		t.Fatalf("hop tokens: %v", routes.HopTokens)
	}
	if !reflect.DeepEqual(routes.Pools.IDs(), []string{"C", "A", "B"}) {
		t.Fatalf("used pools: %v", routes.Pools.IDs())
	}
	if routes.AllPools.Len() != 3 {
		t.Fatalf("all pools: %d", routes.AllPools.Len())
	}
}

func TestFindCandidatePathsMergesLinearRoutes(t *testing.T) {
	r := linearTestRouter()

	routes := r.FindCandidatePaths(linearCatalog(), "DAI", "USDC", 4, testChainID, 0)

	if len(routes.Paths) != 1 {
		t.Fatalf("expected only the linear path, got %d", len(routes.Paths))
	}
	if routes.Paths[0].ID != "LDSTLU" {
		t.Fatalf("path id: %s", routes.Paths[0].ID)
	}
	if !reflect.DeepEqual(routes.Pools.IDs(), []string{"LD", "ST", "LU"}) {
		t.Fatalf("used pools: %v", routes.Pools.IDs())
	}
}
