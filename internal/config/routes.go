package config

import (
	"github.com/spf13/pflag"
)

// RoutesConfig holds configuration for route discovery.
type RoutesConfig struct {
	Input    string
	PGDSN    string
	ChainID  uint64
	TokenIn  string
	TokenOut string
	MaxPools int
	PoolType string
	RPCURL   string
	Out      string
	LogLevel string
}

// LoadRoutes merges config file, environment variables, and flags into RoutesConfig.
func LoadRoutes(cfgFile string, flags *pflag.FlagSet) (RoutesConfig, error) {
	v := newViper()

	v.SetDefault("chain-id", uint64(1))
	v.SetDefault("max-pools", 4)
	v.SetDefault("pool-type", "All")
	v.SetDefault("log-level", "info")

	if err := bindAndRead(v, cfgFile, flags); err != nil {
		return RoutesConfig{}, err
	}

	cfg := RoutesConfig{
		Input:    v.GetString("in"),
		PGDSN:    v.GetString("pg-dsn"),
		ChainID:  v.GetUint64("chain-id"),
		TokenIn:  v.GetString("token-in"),
		TokenOut: v.GetString("token-out"),
		MaxPools: v.GetInt("max-pools"),
		PoolType: v.GetString("pool-type"),
		RPCURL:   v.GetString("rpc"),
		Out:      v.GetString("out"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
