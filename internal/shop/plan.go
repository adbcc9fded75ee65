// Package shop turns a parsed BOM into a sourcing plan: for every line,
// search distributors, resolve the best candidate, and record the ranked
// alternatives. Plans serialize to JSON so the cart commands can replay
// them without re-searching.
package shop

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/runger/hwcli/internal/bom"
	"github.com/runger/hwcli/internal/part"
)

// Item is the sourcing outcome for one BOM line. Either Selected is set
// and Candidates holds the ranked shortlist, or Err explains why the line
// could not be sourced.
type Item struct {
	References []string         `json:"references"`
	Value      string           `json:"value"`
	Footprint  string           `json:"footprint,omitempty"`
	Quantity   int              `json:"quantity"`
	Query      string           `json:"query,omitempty"`
	Selected   *part.Candidate  `json:"selected,omitempty"`
	Candidates []part.Candidate `json:"candidates,omitempty"`
	Err        string           `json:"error,omitempty"`
}

// Sourced reports whether the line resolved to a part.
func (i *Item) Sourced() bool { return i.Selected != nil }

// Plan is the result of sourcing an entire BOM.
type Plan struct {
	ID          string    `json:"id"`
	BOMFile     string    `json:"bom_file"`
	GeneratedAt time.Time `json:"generated_at"`
	Vendors     []string  `json:"vendors,omitempty"`
	Items       []Item    `json:"items"`
}

// NewPlan allocates an empty plan for the given BOM.
func NewPlan(b *bom.BOM, vendors []string) *Plan {
	return &Plan{
		ID:          uuid.NewString(),
		BOMFile:     b.Filename,
		GeneratedAt: time.Now().UTC(),
		Vendors:     vendors,
		Items:       make([]Item, len(b.Lines)),
	}
}

// SourcedCount returns how many lines resolved to a part.
func (p *Plan) SourcedCount() int {
	n := 0
	for i := range p.Items {
		if p.Items[i].Sourced() {
			n++
		}
	}
	return n
}

// ItemsForDistributor returns the sourced items whose selected part comes
// from a distributor matching match (case-insensitive substring).
func (p *Plan) ItemsForDistributor(match func(distributor string) bool) []Item {
	var out []Item
	for _, item := range p.Items {
		if item.Selected != nil && match(item.Selected.Distributor) {
			out = append(out, item)
		}
	}
	return out
}

// TotalPrice sums selected unit price times quantity for all sourced
// items. Items without pricing are skipped; ok is false when any were.
func (p *Plan) TotalPrice() (total float64, ok bool) {
	ok = true
	for _, item := range p.Items {
		if item.Selected == nil {
			continue
		}
		unit, priced := item.Selected.UnitPrice()
		if !priced {
			ok = false
			continue
		}
		total += unit * float64(item.Quantity)
	}
	return total, ok
}

// Save writes the plan as indented JSON.
func (p *Plan) Save(filename string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}

// LoadPlan reads a plan written by Save.
func LoadPlan(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan %s: %w", filename, err)
	}
	return &p, nil
}

// MatchVendor reports whether distributor matches any of the allow-list
// entries by case-insensitive substring. An empty list matches everything.
func MatchVendor(distributor string, vendors []string) bool {
	if len(vendors) == 0 {
		return true
	}
	d := strings.ToLower(distributor)
	for _, v := range vendors {
		if v != "" && strings.Contains(d, strings.ToLower(v)) {
			return true
		}
	}
	return false
}
