package router

import (
	"reflect"
	"testing"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

func TestFilterPoolsByType(t *testing.T) {
	pools := []model.SubgraphPool{
		{ID: "w", PoolType: "Weighted"},
		{ID: "s", PoolType: "Stable"},
		{ID: "l", PoolType: "AaveLinear"},
	}

	cases := []struct {
		filter string
		want   []string
	}{
		{"All", []string{"w", "s", "l"}},
		{"all", []string{"w", "s", "l"}},
		{"Weighted", []string{"w"}},
		{"Stable", []string{"s"}},
		{"Element", nil},
	}

	for _, tc := range cases {
		got := FilterPoolsByType(pools, tc.filter)
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if len(tc.want) == 0 && len(ids) == 0 {
			continue
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Fatalf("filter %q: %v != %v", tc.filter, ids, tc.want)
		}
	}
}
