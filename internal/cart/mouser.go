package cart

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/runger/hwcli/internal/shop"
)

const mouserBaseURL = "https://api.mouser.com"

// IsMouser reports whether a distributor name refers to Mouser.
func IsMouser(distributor string) bool {
	return strings.Contains(strings.ToLower(distributor), "mouser")
}

// MouserClient drives the Mouser cart API.
type MouserClient struct {
	http         *resty.Client
	apiKey       string
	countryCode  string
	currencyCode string
	log          *slog.Logger
}

// NewMouserClient builds a client for the given API key. Country and
// currency codes follow the account locale (e.g. "US", "USD").
func NewMouserClient(apiKey, countryCode, currencyCode string, log *slog.Logger) *MouserClient {
	if log == nil {
		log = slog.Default()
	}
	http := resty.New().
		SetBaseURL(mouserBaseURL).
		SetTimeout(30 * time.Second)
	return &MouserClient{
		http:         http,
		apiKey:       apiKey,
		countryCode:  countryCode,
		currencyCode: currencyCode,
		log:          log,
	}
}

type mouserCartItem struct {
	MouserPartNumber   string `json:"MouserPartNumber"`
	Quantity           int    `json:"Quantity"`
	CustomerPartNumber string `json:"CustomerPartNumber,omitempty"`
}

type mouserCartRequest struct {
	CartKey   string           `json:"CartKey,omitempty"`
	CartItems []mouserCartItem `json:"CartItems"`
}

type mouserCartResponse struct {
	CartKey          string  `json:"CartKey"`
	MerchandiseTotal float64 `json:"MerchandiseTotal"`
	CartItems        []struct {
		MouserPartNumber string `json:"MouserPartNumber"`
		Quantity         int    `json:"Quantity"`
		Errors           []struct {
			Message string `json:"Message"`
		} `json:"Errors"`
	} `json:"CartItems"`
	Errors []struct {
		Message string `json:"Message"`
	} `json:"Errors"`
}

// MouserCartResult summarizes a created cart.
type MouserCartResult struct {
	CartKey          string
	ItemCount        int
	MerchandiseTotal float64
	// Errors are per-item problems Mouser reported without rejecting the
	// whole cart (discontinued parts, bad quantities).
	Errors []string
}

// CreateCart inserts every Mouser-sourced plan item into a new cart (or
// the cart identified by cartKey, when non-empty) and returns the cart
// key for checkout at mouser.com.
func (c *MouserClient) CreateCart(ctx context.Context, plan *shop.Plan, cartKey string) (*MouserCartResult, error) {
	items := plan.ItemsForDistributor(IsMouser)
	if len(items) == 0 {
		return nil, fmt.Errorf("plan has no Mouser items")
	}

	req := mouserCartRequest{CartKey: cartKey}
	for _, item := range items {
		req.CartItems = append(req.CartItems, mouserCartItem{
			MouserPartNumber:   mouserPartNumber(item),
			Quantity:           item.Quantity,
			CustomerPartNumber: strings.Join(item.References, ","),
		})
	}

	var body mouserCartResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":       c.apiKey,
			"countryCode":  c.countryCode,
			"currencyCode": c.currencyCode,
		}).
		SetBody(req).
		SetResult(&body).
		Post("/api/v1/cart/items/insert")
	if err != nil {
		return nil, fmt.Errorf("mouser cart insert: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("mouser cart insert: status %s", resp.Status())
	}
	if len(body.Errors) > 0 {
		return nil, fmt.Errorf("mouser cart insert: %s", body.Errors[0].Message)
	}

	result := &MouserCartResult{
		CartKey:          body.CartKey,
		ItemCount:        len(body.CartItems),
		MerchandiseTotal: body.MerchandiseTotal,
	}
	for _, item := range body.CartItems {
		for _, e := range item.Errors {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: %s", item.MouserPartNumber, e.Message))
		}
	}
	c.log.Info("mouser cart created",
		"cart_key", result.CartKey, "items", result.ItemCount,
		"total", result.MerchandiseTotal, "item_errors", len(result.Errors))
	return result, nil
}

func mouserPartNumber(item shop.Item) string {
	id := item.Selected.ID
	if at := strings.LastIndex(id, "@"); at > 0 {
		return id[:at]
	}
	return item.Selected.MPN
}
