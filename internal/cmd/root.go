// Package cmd wires the hw CLI commands together.
package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/runger/hwcli/internal/config"
	"github.com/runger/hwcli/internal/log"
	"github.com/runger/hwcli/internal/resolve"
	"github.com/runger/hwcli/internal/search"
)

var rootCmd = &cobra.Command{
	Use:   "hw",
	Short: "BOM part sourcing for PCB projects",
	Long: `hw - source the parts on your Bill of Materials
  - hw plan → search distributors and pick the best part per line
  - hw lookup → fill part numbers back into the BOM CSV
  - hw cart → turn a plan into a DigiKey or Mouser cart`,
	SilenceUsage: true,
}

var flagDebug bool

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and installs the logger. Every command
// that talks to the network or filesystem starts here.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	level := cfg.Log.Level
	if flagDebug {
		level = "debug"
	}
	logger, err := log.New(log.Config{Level: level})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// newSearcher builds the distributor search client, wrapped with the
// response cache unless noCache is set. The returned closer is nil when
// nothing needs closing.
func newSearcher(cfg *config.Config, logger *slog.Logger, noCache bool) (search.Searcher, func() error, error) {
	key, err := cfg.RequireSearchKey()
	if err != nil {
		return nil, nil, err
	}
	client := search.NewOEMSecretsClient(key, logger)
	if noCache {
		return client, nil, nil
	}

	path, err := config.CacheFile()
	if err != nil {
		return nil, nil, fmt.Errorf("locating cache: %w", err)
	}
	ttl := time.Duration(cfg.Search.CacheTTLHours) * time.Hour
	cache, err := search.OpenCache(path, ttl)
	if err != nil {
		// A broken cache should not block sourcing.
		logger.Warn("search cache unavailable, continuing without it", "error", err)
		return client, nil, nil
	}
	return search.NewCachedSearcher(client, cache, logger), cache.Close, nil
}

// newResolver builds the candidate resolver with the configured stock
// floor.
func newResolver(cfg *config.Config, logger *slog.Logger) *resolve.Resolver {
	filter := resolve.NewFilter()
	filter.MinStock = cfg.Search.MinStock
	return resolve.NewResolver(filter, nil, logger)
}
