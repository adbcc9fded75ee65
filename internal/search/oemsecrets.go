package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/runger/hwcli/internal/part"
)

const oemSecretsBaseURL = "https://oemsecretsapi.com"

// OEMSecretsClient queries the OEM Secrets aggregated distributor API.
// Docs: https://oemsecretsapi.com/documentation/
//
// One client is shared across all lines of a plan run; resty's transport
// handles connection reuse and is safe for concurrent requests.
type OEMSecretsClient struct {
	http     *resty.Client
	apiKey   string
	currency string
	log      *slog.Logger
}

// NewOEMSecretsClient builds a client with a 15s timeout and up to 3
// retries with exponential backoff on transient failures.
func NewOEMSecretsClient(apiKey string, log *slog.Logger) *OEMSecretsClient {
	if log == nil {
		log = slog.Default()
	}
	http := resty.New().
		SetBaseURL(oemSecretsBaseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(4 * time.Second)
	return &OEMSecretsClient{
		http:     http,
		apiKey:   apiKey,
		currency: "USD",
		log:      log,
	}
}

// oemSecretsResponse mirrors the /partsearch payload, limited to the
// fields the pipeline needs.
type oemSecretsResponse struct {
	Stock []oemSecretsItem `json:"stock"`
}

type oemSecretsItem struct {
	PartNumber       string         `json:"part_number"`
	SourcePartNumber string         `json:"source_part_number"`
	Manufacturer     string         `json:"manufacturer"`
	Description      string         `json:"description"`
	Distributor      map[string]any `json:"distributor"`
	QuantityInStock  any            `json:"quantity_in_stock"`
	Prices           any            `json:"prices"`
	BuyNowURL        string         `json:"buy_now_url"`
	DatasheetURL     string         `json:"datasheet_url"`
	LifeCycle        string         `json:"life_cycle"`
}

// Search queries /partsearch and maps the response to normalized
// candidates. Results are not deduplicated here; the workflow owns that.
func (c *OEMSecretsClient) Search(ctx context.Context, query string) ([]part.Candidate, error) {
	var body oemSecretsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":     c.apiKey,
			"searchTerm": query,
			"currency":   c.currency,
		}).
		SetResult(&body).
		Get("/partsearch")
	if err != nil {
		return nil, fmt.Errorf("oemsecrets search %q: %w", query, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oemsecrets search %q: status %s", query, resp.Status())
	}

	candidates := make([]part.Candidate, 0, len(body.Stock))
	for _, item := range body.Stock {
		candidates = append(candidates, c.toCandidate(item))
	}
	c.log.Debug("oemsecrets search", "query", query, "results", len(candidates))
	return candidates, nil
}

// toCandidate maps one stock entry. The API is loose with types (numbers
// as strings, "" instead of objects), so every field is coerced
// defensively here and nowhere else.
func (c *OEMSecretsClient) toCandidate(item oemSecretsItem) part.Candidate {
	distributor := ""
	if d := item.Distributor; d != nil {
		if name, ok := d["distributor_common_name"].(string); ok && name != "" {
			distributor = name
		} else if name, ok := d["distributor_name"].(string); ok {
			distributor = name
		}
	}

	breaks := parsePriceBreaks(item.Prices, c.currency)
	var price *float64
	if len(breaks) > 0 {
		price = part.Float(breaks[0].UnitPrice)
	}

	// The distributor catalog number is the stable key; fall back to the
	// MPN when a distributor doesn't expose one.
	key := item.SourcePartNumber
	if key == "" {
		key = item.PartNumber
	}
	id := ""
	if key != "" {
		id = key + "@" + distributor
	}

	return part.Candidate{
		ID:           id,
		Description:  item.Description,
		Manufacturer: item.Manufacturer,
		MPN:          item.PartNumber,
		Stock:        asInt(item.QuantityInStock),
		Price:        price,
		PriceBreaks:  breaks,
		Currency:     c.currency,
		Distributor:  distributor,
		BuyNowURL:    item.BuyNowURL,
		DatasheetURL: item.DatasheetURL,
		Lifecycle:    item.LifeCycle,
		Source:       "oemsecrets",
	}
}

// parsePriceBreaks handles the prices field, which is either an object of
// currency-keyed break lists or an empty string when no pricing exists.
func parsePriceBreaks(raw any, currency string) []part.PriceBreak {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	list, ok := obj[currency].([]any)
	if !ok {
		return nil
	}
	breaks := make([]part.PriceBreak, 0, len(list))
	for _, entry := range list {
		pb, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		qty := asInt(pb["unit_break"])
		unit := asFloat(pb["unit_price"])
		if qty <= 0 || unit <= 0 {
			continue
		}
		breaks = append(breaks, part.PriceBreak{Qty: qty, UnitPrice: unit})
	}
	return breaks
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, _ := strconv.Atoi(n)
		return i
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	}
	return 0
}
