package model

import "github.com/shopspring/decimal"

// Product belongs to exactly one Supplier. OrderQuantity > 0 means the item
// is part of the supplier's active order; ExchangeQuantity > 0 means units
// are pending return/replacement. The two counters are independent.
type Product struct {
	BaseModel
	SupplierID       uint            `gorm:"index;not null" json:"supplier_id" validate:"required"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	OrderQuantity    float64         `gorm:"default:0" json:"order_quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	Unit             Unit            `gorm:"type:varchar(20);default:box" json:"unit"`
	ExchangeQuantity float64         `gorm:"default:0" json:"exchange_quantity"`
}

// ProductUpdate is a partial update: nil fields are left untouched.
type ProductUpdate struct {
	SupplierID       *uint            `json:"supplier_id"`
	Name             *string          `json:"name"`
	OrderQuantity    *float64         `json:"order_quantity"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	Unit             *string          `json:"unit"`
	ExchangeQuantity *float64         `json:"exchange_quantity"`
}

// ClampQuantity keeps quantity fields inside the store invariant: a mutation
// asking for a negative value is clamped to zero, not rejected.
func ClampQuantity(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// ClampPrice is the decimal counterpart of ClampQuantity for unit prices.
func ClampPrice(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}
