package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as plain JSON numbers so transfer documents stay
	// hand-editable.
	decimal.MarshalJSONWithoutQuotes = true
}

// BaseModel handles the store-assigned integer ID and standard timestamps.
// The ID is immutable once assigned and unique within its own collection.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
