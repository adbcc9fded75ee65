package part

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	t.Parallel()

	first := Candidate{ID: "C1525", Stock: 1000}
	dup := Candidate{ID: "C1525", Stock: 999}
	other := Candidate{ID: "C52923", Stock: 500}
	anon := Candidate{Stock: 42}

	out := Dedupe([]Candidate{first, dup, anon, other})
	assert.Equal(t, []Candidate{first, other}, out)
}

func TestDedupe_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]Candidate{}))
}

func TestUnitPrice(t *testing.T) {
	t.Parallel()

	c := Candidate{}
	_, ok := c.UnitPrice()
	assert.False(t, ok)

	c.Price = Float(0.0123)
	price, ok := c.UnitPrice()
	assert.True(t, ok)
	assert.Equal(t, 0.0123, price)
}

func TestQuantityNeeded(t *testing.T) {
	t.Parallel()

	c := Candidate{References: []string{"R1", "R2", "R3"}}
	assert.Equal(t, 3, c.QuantityNeeded())
	assert.Equal(t, 0, (&Candidate{}).QuantityNeeded())
}
