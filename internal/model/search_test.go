package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStockBand(t *testing.T) {
	for _, s := range []string{"", "all", "out", "low", "sufficient"} {
		_, err := ParseStockBand(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseStockBand("plenty")
	assert.Error(t, err)
}

func TestStockBandBounds(t *testing.T) {
	minStock, maxStock := StockBandOut.Bounds()
	require.NotNil(t, minStock)
	require.NotNil(t, maxStock)
	assert.Equal(t, 0, *minStock)
	assert.Equal(t, 0, *maxStock)

	minStock, maxStock = StockBandLow.Bounds()
	assert.Equal(t, 1, *minStock)
	assert.Equal(t, 20, *maxStock)

	minStock, maxStock = StockBandSufficient.Bounds()
	assert.Equal(t, 21, *minStock)
	assert.Nil(t, maxStock)

	minStock, maxStock = StockBandAll.Bounds()
	assert.Nil(t, minStock)
	assert.Nil(t, maxStock)
}

func TestSortKeyOrderClause(t *testing.T) {
	cases := map[SortKey]string{
		SortNameAsc:      "product_name ASC",
		SortNameDesc:     "product_name DESC",
		SortPriceAsc:     "price ASC",
		SortPriceDesc:    "price DESC",
		SortStockAsc:     "stock ASC",
		SortStockDesc:    "stock DESC",
		SortUpdatedDesc:  "updated_at DESC",
		SortKey(""):      "product_name ASC",
		SortKey("bogus"): "product_name ASC",
	}
	for key, want := range cases {
		assert.Equal(t, want, key.OrderClause(), string(key))
	}
}

func TestNewProductPage(t *testing.T) {
	page := NewProductPage(make([]Product, 20), 45, 0, 20)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(45), page.TotalElements)
	assert.Equal(t, 0, page.PageNumber)
	assert.LessOrEqual(t, len(page.Content), page.PageSize)

	// Exact multiple.
	page = NewProductPage(make([]Product, 20), 40, 1, 20)
	assert.Equal(t, 2, page.TotalPages)

	// Empty result set.
	page = NewProductPage(nil, 0, 0, 20)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Content)
}
