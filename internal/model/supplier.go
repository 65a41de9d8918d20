package model

// Supplier is a vendor owning zero or more Products. Names are free text and
// not required to be unique.
type Supplier struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}
