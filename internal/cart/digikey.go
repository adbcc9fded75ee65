// Package cart builds distributor shopping carts from sourcing plans:
// a shareable URL for DigiKey, and API-driven cart creation for Mouser.
package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/runger/hwcli/internal/shop"
)

// IsDigiKey reports whether a distributor name refers to DigiKey.
// Aggregators spell it several ways ("Digi-Key", "DigiKey Electronics").
func IsDigiKey(distributor string) bool {
	d := strings.ToLower(strings.ReplaceAll(distributor, " ", ""))
	d = strings.ReplaceAll(d, "-", "")
	return strings.Contains(d, "digikey")
}

// BuildDigiKeyURL returns a shopping-cart URL preloaded with every
// DigiKey-sourced item in the plan. DigiKey accepts repeated part
// parameters of the form PARTNUMBER|QUANTITY. Returns an error when the
// plan has no DigiKey items.
func BuildDigiKeyURL(plan *shop.Plan) (string, error) {
	items := plan.ItemsForDistributor(IsDigiKey)
	if len(items) == 0 {
		return "", fmt.Errorf("plan has no DigiKey items")
	}

	params := url.Values{}
	for _, item := range items {
		pn := digiKeyPartNumber(item)
		params.Add("part", fmt.Sprintf("%s|%d", pn, item.Quantity))
	}
	return "https://www.digikey.com/ordering/shoppingcart?" + params.Encode(), nil
}

// digiKeyPartNumber prefers the distributor SKU embedded in the candidate
// ID ("SKU@Distributor") over the bare MPN, since DigiKey carts want
// their own catalog numbers.
func digiKeyPartNumber(item shop.Item) string {
	id := item.Selected.ID
	if at := strings.LastIndex(id, "@"); at > 0 {
		return id[:at]
	}
	return item.Selected.MPN
}
