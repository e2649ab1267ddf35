package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(id string, priceUGX, priceKES int64) *Product {
	return &Product{
		ID:       id,
		Name:     "Oud Royale " + id,
		Category: "Oil Perfume",
		Origin:   "Uganda",
		PriceUGX: priceUGX,
		PriceKES: priceKES,
	}
}

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	p := testProduct("p1", 10_000, 350)

	cart.Add(p)
	cart.Add(p)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCart_DistinctLinesNeverExceedDistinctProducts(t *testing.T) {
	cart := NewCart()
	a := testProduct("a", 10_000, 350)
	b := testProduct("b", 20_000, 700)

	cart.Add(a)
	cart.Add(b)
	cart.Add(a)
	cart.Add(b)
	cart.Add(a)

	assert.Len(t, cart.Lines, 2)
}

func TestCart_AddSnapshotsProduct(t *testing.T) {
	cart := NewCart()
	p := testProduct("p1", 10_000, 350)

	cart.Add(p)
	p.PriceUGX = 99_999
	p.Name = "renamed"

	line, ok := cart.Line("p1")
	assert.True(t, ok)
	assert.Equal(t, int64(10_000), line.PriceUGX)
	assert.Equal(t, "Oud Royale p1", line.Name)
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("p1", 10_000, 350))

	cart.Remove("missing")

	assert.Len(t, cart.Lines, 1)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("p1", 10_000, 350))

	cart.SetQuantity("p1", 0)

	_, ok := cart.Line("p1")
	assert.False(t, ok)
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantityNegativeRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("p1", 10_000, 350))

	cart.SetQuantity("p1", -3)

	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantityUpdatesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("p1", 10_000, 350))

	cart.SetQuantity("p1", 5)

	line, _ := cart.Line("p1")
	assert.Equal(t, 5, line.Quantity)
}

func TestCart_Count(t *testing.T) {
	cart := NewCart()
	a := testProduct("a", 10_000, 350)
	b := testProduct("b", 20_000, 700)

	cart.Add(a)
	cart.Add(a)
	cart.Add(b)

	assert.Equal(t, 3, cart.Count())
}

func TestCart_TotalPerCurrency(t *testing.T) {
	cart := NewCart()
	a := testProduct("a", 10_000, 350)
	b := testProduct("b", 20_000, 700)

	cart.Add(a)
	cart.Add(a)
	cart.Add(b)

	assert.Equal(t, int64(2*10_000+20_000), cart.Total(CurrencyUGX))
	assert.Equal(t, int64(2*350+700), cart.Total(CurrencyKES))
}

func TestCart_TotalRecomputedAfterEveryMutation(t *testing.T) {
	cart := NewCart()
	a := testProduct("a", 10_000, 350)
	b := testProduct("b", 5_000, 175)

	cart.Add(a)
	assert.Equal(t, int64(10_000), cart.Total(CurrencyUGX))

	cart.Add(b)
	assert.Equal(t, int64(15_000), cart.Total(CurrencyUGX))

	cart.SetQuantity("a", 3)
	assert.Equal(t, int64(35_000), cart.Total(CurrencyUGX))

	cart.Remove("b")
	assert.Equal(t, int64(30_000), cart.Total(CurrencyUGX))

	cart.Clear()
	assert.Equal(t, int64(0), cart.Total(CurrencyUGX))
	assert.Equal(t, 0, cart.Count())
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("KES")
	assert.NoError(t, err)
	assert.Equal(t, CurrencyKES, c)

	_, err = ParseCurrency("EUR")
	assert.Error(t, err)
}
