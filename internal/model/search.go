package model

import "fmt"

// StockBand is a named stock-level range used for filtering and alert
// counts.
type StockBand string

const (
	StockBandAll        StockBand = "all"
	StockBandOut        StockBand = "out"
	StockBandLow        StockBand = "low"
	StockBandSufficient StockBand = "sufficient"
)

// ParseStockBand maps the query-string value onto a band. Empty means no
// filter.
func ParseStockBand(s string) (StockBand, error) {
	switch StockBand(s) {
	case "", StockBandAll:
		return StockBandAll, nil
	case StockBandOut, StockBandLow, StockBandSufficient:
		return StockBand(s), nil
	default:
		return "", fmt.Errorf("unknown stock filter %q", s)
	}
}

// Bounds returns the inclusive stock range of the band. A nil bound means
// unbounded on that side; all-nil means unfiltered.
func (b StockBand) Bounds() (minStock, maxStock *int) {
	intp := func(v int) *int { return &v }
	switch b {
	case StockBandOut:
		return intp(0), intp(0)
	case StockBandLow:
		return intp(1), intp(LowStockMax)
	case StockBandSufficient:
		return intp(SufficientStockMin), nil
	default:
		return nil, nil
	}
}

// SortKey selects the result ordering of a product search.
type SortKey string

const (
	SortNameAsc     SortKey = "name"
	SortNameDesc    SortKey = "name_desc"
	SortPriceAsc    SortKey = "price"
	SortPriceDesc   SortKey = "price_desc"
	SortStockAsc    SortKey = "stock"
	SortStockDesc   SortKey = "stock_desc"
	SortUpdatedDesc SortKey = "updated"
)

// OrderClause maps the sort key onto an ORDER BY expression. Unknown or
// empty keys fall back to product name ascending, matching the default
// listing order.
func (k SortKey) OrderClause() string {
	switch k {
	case SortNameDesc:
		return "product_name DESC"
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	case SortStockAsc:
		return "stock ASC"
	case SortStockDesc:
		return "stock DESC"
	case SortUpdatedDesc:
		return "updated_at DESC"
	default:
		return "product_name ASC"
	}
}

// SearchCriteria is one faceted product query. All facets are optional;
// zero values mean "no filter".
type SearchCriteria struct {
	Keyword  string    // case-insensitive substring on product name
	Category string    // exact match
	Status   string    // exact match
	Band     StockBand // stock-level band filter
	Sort     SortKey
	Page     int // zero-based
	PageSize int
	// IncludeDeleted opts privileged callers into seeing soft-deleted
	// rows. The caller-facing layer decides who may set it.
	IncludeDeleted bool
}

// ProductPage is one page of search results.
type ProductPage struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"total_elements"`
	TotalPages    int       `json:"total_pages"`
	PageNumber    int       `json:"page_number"`
	PageSize      int       `json:"page_size"`
}

// NewProductPage assembles the page envelope. TotalPages is ceil(total /
// size) and never negative.
func NewProductPage(content []Product, total int64, page, size int) *ProductPage {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &ProductPage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		PageNumber:    page,
		PageSize:      size,
	}
}

// StockBandCounts are the dashboard alert counts. They always exclude
// soft-deleted products, whatever IncludeDeleted was used elsewhere.
type StockBandCounts struct {
	LowStockCount   int64 `json:"low_stock_count"`
	OutOfStockCount int64 `json:"out_of_stock_count"`
}
