package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FetchConfig holds configuration for catalog fetching.
type FetchConfig struct {
	SubgraphURL  string
	ChainID      uint64
	Out          string
	PGDSN        string
	PageSize     int
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadFetch merges config file, environment variables, and flags into FetchConfig.
func LoadFetch(cfgFile string, flags *pflag.FlagSet) (FetchConfig, error) {
	v := newViper()

	v.SetDefault("chain-id", uint64(1))
	v.SetDefault("out", "./data/pools.jsonl")
	v.SetDefault("page-size", 1000)
	v.SetDefault("max-retries", 5)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	if err := bindAndRead(v, cfgFile, flags); err != nil {
		return FetchConfig{}, err
	}

	cfg := FetchConfig{
		SubgraphURL:  v.GetString("subgraph-url"),
		ChainID:      v.GetUint64("chain-id"),
		Out:          v.GetString("out"),
		PGDSN:        v.GetString("pg-dsn"),
		PageSize:     v.GetInt("page-size"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func bindAndRead(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) error {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
