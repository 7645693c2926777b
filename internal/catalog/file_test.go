package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

func TestCatalogFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.jsonl")
	pools := []model.SubgraphPool{
		{
			ID:       "0xpool1",
			Address:  "0xabc",
			PoolType: "Weighted",
			SwapFee:  "0.003",
			Tokens: []model.SubgraphPoolToken{
				{Address: "0xaaa", Balance: "100", Decimals: 18, Weight: "0.5"},
				{Address: "0xbbb", Balance: "200", Decimals: 6, Weight: "0.5"},
			},
			TokensList: []string{"0xaaa", "0xbbb"},
		},
		{
			ID:         "0xpool2",
			Address:    "0xdef",
			PoolType:   "Stable",
			SwapFee:    "0.0001",
			Amp:        "200",
			Tokens:     []model.SubgraphPoolToken{{Address: "0xccc", Balance: "1", Decimals: 18}},
			TokensList: []string{"0xccc"},
		},
	}

	if err := WriteFile(path, pools); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !reflect.DeepEqual(got, pools) {
		t.Fatalf("round-trip mismatch: %+v != %+v", got, pools)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadFileMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.jsonl")
	if err := os.WriteFile(path, []byte("{\"id\":\"ok\"}\nnot-json\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestReadFileSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.jsonl")
	if err := os.WriteFile(path, []byte("\n{\"id\":\"p1\"}\n\n{\"id\":\"p2\"}\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
		t.Fatalf("unexpected records: %+v", got)
	}
}
