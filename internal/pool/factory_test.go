package pool

import (
	"errors"
	"testing"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

func weightedFixture() model.SubgraphPool {
	return model.SubgraphPool{
		ID:       "0xpoolw",
		Address:  "0xw",
		PoolType: "Weighted",
		SwapFee:  "0.003",
		Tokens: []model.SubgraphPoolToken{
			{Address: "0xaaa", Balance: "100", Decimals: 18, Weight: "0.8"},
			{Address: "0xbbb", Balance: "200", Decimals: 6, Weight: "0.2"},
		},
		TokensList: []string{"0xaaa", "0xbbb"},
	}
}

func TestFactoryDispatch(t *testing.T) {
	cases := []struct {
		declared string
		want     Type
	}{
		{"Weighted", TypeWeighted},
		{"LiquidityBootstrapping", TypeWeighted},
		{"Investment", TypeWeighted},
		{"Stable", TypeStable},
		{"StablePhantom", TypeStable},
		{"MetaStable", TypeMetaStable},
		{"Element", TypeElement},
		{"AaveLinear", TypeLinear},
		{"ERC4626Linear", TypeLinear},
	}

	for _, tc := range cases {
		raw := weightedFixture()
		raw.PoolType = tc.declared
		switch tc.want {
		case TypeStable, TypeMetaStable:
			raw.Amp = "200"
		case TypeLinear:
			raw.Address = "0xbbb"
			raw.MainIndex = 0
			raw.WrappedIndex = 1
		}

		p, err := New(raw)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.declared, err)
		}
		if p.Type() != tc.want {
			t.Fatalf("%s: type mismatch: %v != %v", tc.declared, p.Type(), tc.want)
		}
	}
}

func TestFactoryUnsupportedType(t *testing.T) {
	raw := weightedFixture()
	raw.PoolType = "Gyro2"
	if _, err := New(raw); !errors.Is(err, ErrUnsupportedPoolType) {
		t.Fatalf("expected ErrUnsupportedPoolType, got %v", err)
	}
}

func TestFactoryMalformedRecords(t *testing.T) {
	badBalance := weightedFixture()
	badBalance.Tokens[0].Balance = "not-a-number"
	if _, err := New(badBalance); err == nil {
		t.Fatalf("expected error for malformed balance")
	}

	missingWeight := weightedFixture()
	missingWeight.Tokens[1].Weight = ""
	if _, err := New(missingWeight); err == nil {
		t.Fatalf("expected error for missing weight")
	}

	missingAmp := weightedFixture()
	missingAmp.PoolType = "Stable"
	missingAmp.Amp = ""
	if _, err := New(missingAmp); err == nil {
		t.Fatalf("expected error for missing amp")
	}
}

func TestSetRole(t *testing.T) {
	p, err := New(weightedFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role() != RoleNone {
		t.Fatalf("new pool should have no role, got %v", p.Role())
	}
	p.SetRole(RoleHopIn)
	if p.Role() != RoleHopIn {
		t.Fatalf("role not updated: %v", p.Role())
	}
}
