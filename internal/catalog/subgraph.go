package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"github.com/lolieatapple/balancer-sor/internal/model"
)

const poolsQuery = `
query ($first: Int!, $skip: Int!) {
  pools(
    first: $first
    skip: $skip
    where: { swapEnabled: true }
    orderBy: totalLiquidity
    orderDirection: desc
  ) {
    id
    address
    poolType
    swapFee
    totalShares
    totalWeight
    amp
    tokens {
      address
      balance
      decimals
      weight
      priceRate
    }
    tokensList
    expiryTime
    unitSeconds
    principalToken
    baseToken
    mainIndex
    wrappedIndex
    lowerTarget
    upperTarget
  }
}
`

// SubgraphConfig configures the pool catalog fetcher.
type SubgraphConfig struct {
	URL          string
	PageSize     int
	MaxRetries   int
	RetryBackoff time.Duration
}

// SubgraphClient pages the pool catalog out of a Balancer-style subgraph.
type SubgraphClient struct {
	client       *graphql.Client
	pageSize     int
	maxRetries   int
	retryBackoff time.Duration
	logger       *zap.Logger
}

func NewSubgraphClient(cfg SubgraphConfig, logger *zap.Logger) (*SubgraphClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("subgraph url is required")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 1000
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SubgraphClient{
		client:       graphql.NewClient(cfg.URL),
		pageSize:     cfg.PageSize,
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
		logger:       logger,
	}, nil
}

// FetchPools retrieves the full pool catalog, page by page, in subgraph
// order.
func (c *SubgraphClient) FetchPools(ctx context.Context) ([]model.SubgraphPool, error) {
	var all []model.SubgraphPool
	skip := 0

	for {
		req := graphql.NewRequest(poolsQuery)
		req.Var("first", c.pageSize)
		req.Var("skip", skip)

		var resp struct {
			Pools []model.SubgraphPool `json:"pools"`
		}
		err := withRetry(ctx, c.maxRetries, c.retryBackoff, func(ctx context.Context) error {
			return c.client.Run(ctx, req, &resp)
		})
		if err != nil {
			return nil, fmt.Errorf("query pools at skip %d: %w", skip, err)
		}

		all = append(all, resp.Pools...)
		c.logger.Debug("fetched pools page", zap.Int("skip", skip), zap.Int("count", len(resp.Pools)))

		if len(resp.Pools) < c.pageSize {
			break
		}
		skip += c.pageSize
	}

	return all, nil
}
