// Package part defines the normalized candidate record shared by every
// search transport and the resolution pipeline. Transports map their raw
// payloads into Candidate exactly once at the boundary; downstream code
// never sees untyped data.
package part

// PriceBreak is a quantity-based price break from a distributor.
type PriceBreak struct {
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

// Candidate is a single normalized search result.
//
// ID is the vendor-specific part key (LCSC C-number, distributor SKU, …),
// unique within one search and used for deduplication. Package and Category
// are free-text and may be empty when the vendor returns no structured data.
type Candidate struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	Manufacturer string       `json:"manufacturer,omitempty"`
	MPN          string       `json:"mpn,omitempty"`
	Package      string       `json:"package,omitempty"`
	Category     string       `json:"category,omitempty"`
	Stock        int          `json:"stock"`
	Price        *float64     `json:"price,omitempty"`
	PriceBreaks  []PriceBreak `json:"price_breaks,omitempty"`
	Currency     string       `json:"currency,omitempty"`
	Discontinued bool         `json:"discontinued,omitempty"`
	Distributor  string       `json:"distributor,omitempty"`
	BuyNowURL    string       `json:"buy_now_url,omitempty"`
	DatasheetURL string       `json:"datasheet_url,omitempty"`
	Lifecycle    string       `json:"lifecycle,omitempty"`
	Source       string       `json:"source,omitempty"`

	// BOM linkage, attached by the plan workflow after resolution so
	// reports can tie a candidate back to the line it satisfies.
	References []string `json:"references,omitempty"`
	Value      string   `json:"value,omitempty"`
	Footprint  string   `json:"footprint,omitempty"`
}

// QuantityNeeded is the number of board placements this candidate covers.
func (c *Candidate) QuantityNeeded() int {
	return len(c.References)
}

// UnitPrice returns the qty=1 price, or 0 with ok=false when unknown.
func (c *Candidate) UnitPrice() (float64, bool) {
	if c.Price == nil {
		return 0, false
	}
	return *c.Price, true
}

// Dedupe removes candidates with a duplicate ID, keeping the first
// occurrence. Candidates with an empty ID are dropped entirely: without a
// vendor key they cannot be ordered or deduplicated. The input slice is not
// modified.
func Dedupe(candidates []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == "" {
			continue
		}
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Float returns a pointer to v, for building Candidate literals.
func Float(v float64) *float64 { return &v }
