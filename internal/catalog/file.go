package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// ReadFile loads raw pool records from a JSONL catalog file, one record per
// line, preserving file order.
func ReadFile(path string) ([]model.SubgraphPool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var pools []model.SubgraphPool
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec model.SubgraphPool
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode catalog line %d: %w", line, err)
		}
		pools = append(pools, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}

	return pools, nil
}

// WriteFile writes a catalog snapshot as JSON lines, replacing any previous
// content.
func WriteFile(path string, pools []model.SubgraphPool) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, rec := range pools {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal pool %s: %w", rec.ID, err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write pool record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
