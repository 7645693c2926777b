package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

// Store provides Postgres persistence for pool catalog snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertPools inserts or updates raw pool records for a chain.
func (s *Store) UpsertPools(ctx context.Context, chainID uint64, pools []model.SubgraphPool) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range pools {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal pool %s: %w", p.ID, err)
		}
		batch.Queue(`
			INSERT INTO subgraph_pools (
				chain_id, pool_id, address, pool_type, data, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (chain_id, pool_id)
			DO UPDATE SET
				address = EXCLUDED.address,
				pool_type = EXCLUDED.pool_type,
				data = EXCLUDED.data,
				updated_at = now()
		`,
			int64(chainID),
			p.ID,
			p.Address,
			p.PoolType,
			data,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range pools {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// LoadPools returns all raw pool records stored for a chain, ordered by pool
// id so repeated loads see the same ordering.
func (s *Store) LoadPools(ctx context.Context, chainID uint64) ([]model.SubgraphPool, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT data FROM subgraph_pools WHERE chain_id=$1 ORDER BY pool_id
	`, int64(chainID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pools []model.SubgraphPool
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var p model.SubgraphPool
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode pool record: %w", err)
		}
		pools = append(pools, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pools, nil
}
