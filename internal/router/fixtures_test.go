package router

import (
	"github.com/lolieatapple/balancer-sor/internal/model"
)

// rawToken is an (address, balance) fixture pair.
type rawToken struct {
	addr    string
	balance string
}

// rawWeighted builds a weighted pool record with equal weights, so the
// normalized liquidity for any pair is balanceOut / 2.
func rawWeighted(id string, toks ...rawToken) model.SubgraphPool {
	rec := model.SubgraphPool{
		ID:       id,
		Address:  "0xaddr-" + id,
		PoolType: "Weighted",
		SwapFee:  "0.003",
	}
	for _, t := range toks {
		rec.Tokens = append(rec.Tokens, model.SubgraphPoolToken{
			Address:  t.addr,
			Balance:  t.balance,
			Decimals: 18,
			Weight:   "1",
		})
		rec.TokensList = append(rec.TokensList, t.addr)
	}
	return rec
}

// rawLinear builds a linear pool record wrapping main into a BPT named
// "bpt-"+id.
func rawLinear(id, main, wrapped string) model.SubgraphPool {
	bpt := "bpt-" + id
	return model.SubgraphPool{
		ID:       id,
		Address:  bpt,
		PoolType: "AaveLinear",
		SwapFee:  "0.0001",
		Tokens: []model.SubgraphPoolToken{
			{Address: main, Balance: "1000", Decimals: 18},
			{Address: wrapped, Balance: "500", Decimals: 18},
			{Address: bpt, Balance: "1500", Decimals: 18},
		},
		TokensList:   []string{main, wrapped, bpt},
		MainIndex:    0,
		WrappedIndex: 1,
	}
}

// rawPhantomStable builds the top-level stable pool over the given BPTs.
func rawPhantomStable(id string, bpts ...string) model.SubgraphPool {
	rec := model.SubgraphPool{
		ID:       id,
		Address:  "0xaddr-" + id,
		PoolType: "StablePhantom",
		SwapFee:  "0.0001",
		Amp:      "570",
	}
	for _, bpt := range bpts {
		rec.Tokens = append(rec.Tokens, model.SubgraphPoolToken{
			Address:  bpt,
			Balance:  "1000000",
			Decimals: 18,
		})
		rec.TokensList = append(rec.TokensList, bpt)
	}
	return rec
}

// assertChainable fails the test when consecutive legs do not chain.
func assertChainable(t interface {
	Helper()
	Fatalf(format string, args ...interface{})
}, p *Path) {
	t.Helper()
	for i := 0; i+1 < len(p.Swaps); i++ {
		if p.Swaps[i].TokenOut != p.Swaps[i+1].TokenIn {
			t.Fatalf("path %s: leg %d out %s != leg %d in %s",
				p.ID, i, p.Swaps[i].TokenOut, i+1, p.Swaps[i+1].TokenIn)
		}
	}
}
