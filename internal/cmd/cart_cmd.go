package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/runger/hwcli/internal/cart"
	"github.com/runger/hwcli/internal/shop"
)

var cartMouserKey string

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Build distributor shopping carts from a sourcing plan",
}

var cartDigiKeyCmd = &cobra.Command{
	Use:   "digikey <plan.json>",
	Short: "Print a DigiKey cart URL for the plan's DigiKey items",
	Long: `Print a DigiKey shopping-cart URL preloaded with every item in the
plan that was sourced from DigiKey. Open it in a browser to review and
check out.

Examples:
  hw cart digikey bom.plan.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCartDigiKey,
}

var cartMouserCmd = &cobra.Command{
	Use:   "mouser <plan.json>",
	Short: "Create a Mouser cart from the plan's Mouser items",
	Long: `Create a cart at Mouser via their API with every item in the plan that
was sourced from Mouser, and print the cart key for checkout.

Requires a Mouser API key (cart.mouser_api_key in the config file or
the MOUSER_API_KEY environment variable).

Examples:
  hw cart mouser bom.plan.json
  hw cart mouser --cart-key 9e3cba6c-... bom.plan.json   # add to existing cart`,
	Args: cobra.ExactArgs(1),
	RunE: runCartMouser,
}

func init() {
	cartMouserCmd.Flags().StringVar(&cartMouserKey, "cart-key", "", "existing Mouser cart to add items to")
	cartCmd.AddCommand(cartDigiKeyCmd)
	cartCmd.AddCommand(cartMouserCmd)
}

func runCartDigiKey(cmd *cobra.Command, args []string) error {
	plan, err := shop.LoadPlan(args[0])
	if err != nil {
		return err
	}
	url, err := cart.BuildDigiKeyURL(plan)
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

func runCartMouser(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if cfg.Cart.MouserAPIKey == "" {
		return fmt.Errorf("no Mouser API key found: set MOUSER_API_KEY or add cart.mouser_api_key to the config file")
	}
	if cartMouserKey != "" {
		if _, err := uuid.Parse(cartMouserKey); err != nil {
			return fmt.Errorf("invalid cart key %q: Mouser cart keys are UUIDs", cartMouserKey)
		}
	}

	plan, err := shop.LoadPlan(args[0])
	if err != nil {
		return err
	}

	client := cart.NewMouserClient(cfg.Cart.MouserAPIKey, cfg.Cart.CountryCode, cfg.Cart.CurrencyCode, logger)
	result, err := client.CreateCart(cmd.Context(), plan, cartMouserKey)
	if err != nil {
		return err
	}

	fmt.Printf("Cart %s: %d items, merchandise total %.2f %s\n",
		result.CartKey, result.ItemCount, result.MerchandiseTotal, cfg.Cart.CurrencyCode)
	for _, e := range result.Errors {
		fmt.Printf("  warning: %s\n", e)
	}
	fmt.Println("Open https://www.mouser.com/cart/ while signed in to check out.")
	return nil
}
