package model

import "time"

// Stock band boundaries. Low stock is 1-20 inclusive, sufficient starts at
// 21. Dashboards and the stock filter must agree on these exact numbers.
const (
	LowStockMax        = 20
	SufficientStockMin = LowStockMax + 1
)

type Product struct {
	BaseModel
	ProductCode string  `gorm:"type:varchar(8);uniqueIndex;not null" json:"product_code"`
	ProductName string  `gorm:"type:varchar(100);not null" json:"product_name"`
	Category    string  `gorm:"type:varchar(50);not null" json:"category"`
	Status      string  `gorm:"type:varchar(20);not null;default:active" json:"status"`
	Price       float64 `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock       int     `gorm:"not null;default:0;check:stock >= 0" json:"stock"`

	// Optional descriptive attributes, stored and returned verbatim.
	// The ledger never interprets these.
	Details ProductDetails `gorm:"embedded" json:"details"`
}

// ProductDetails is the bag of optional descriptive fields, populated once
// at registration instead of being null-checked all over the place.
type ProductDetails struct {
	SKU               *string    `gorm:"type:varchar(50);uniqueIndex" json:"sku,omitempty"`
	Description       *string    `gorm:"type:text" json:"description,omitempty"`
	Rating            *float64   `gorm:"type:numeric(2,1)" json:"rating,omitempty"`
	WarrantyMonths    *int       `json:"warranty_months,omitempty"`
	Dimensions        *string    `gorm:"type:varchar(100)" json:"dimensions,omitempty"`
	Variations        *string    `gorm:"type:varchar(200)" json:"variations,omitempty"`
	ManufacturingDate *time.Time `gorm:"type:date" json:"manufacturing_date,omitempty"`
	ExpirationDate    *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`
	Tags              *string    `gorm:"type:varchar(200)" json:"tags,omitempty"`
}

// StockStatus returns the band the current stock level falls in.
func (p *Product) StockStatus() StockBand {
	switch {
	case p.Stock == 0:
		return StockBandOut
	case p.Stock <= LowStockMax:
		return StockBandLow
	default:
		return StockBandSufficient
	}
}

// IsLowStock reports whether stock is in the 1-20 alert band.
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockMax
}

// IsOutOfStock reports whether stock is exactly zero.
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// Summary is the compact product shape returned by mutating endpoints.
type Summary struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
}

func (p *Product) Summary() Summary {
	return Summary{
		ID:          p.ID.String(),
		ProductName: p.ProductName,
		Stock:       p.Stock,
	}
}
