package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/hwcli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the hw configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Init()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		fmt.Println("Add your OEM Secrets API key to get started.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("config file:        %s\n", config.File())
		fmt.Printf("search.api_key:     %s\n", mask(cfg.Search.OEMSecretsAPIKey))
		fmt.Printf("search.min_stock:   %d\n", cfg.Search.MinStock)
		fmt.Printf("search.max_candidates: %d\n", cfg.Search.MaxCandidates)
		fmt.Printf("search.concurrency: %d\n", cfg.Search.Concurrency)
		fmt.Printf("search.vendors:     %s\n", vendorList(cfg.Search.Vendors))
		fmt.Printf("search.cache_ttl:   %dh\n", cfg.Search.CacheTTLHours)
		fmt.Printf("cart.mouser_key:    %s\n", mask(cfg.Cart.MouserAPIKey))
		fmt.Printf("cart.locale:        %s/%s\n", cfg.Cart.CountryCode, cfg.Cart.CurrencyCode)
		fmt.Printf("log.level:          %s\n", cfg.Log.Level)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// mask hides all but the last 4 characters of a secret.
func mask(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

func vendorList(vendors []string) string {
	if len(vendors) == 0 {
		return "(all)"
	}
	return strings.Join(vendors, ", ")
}
