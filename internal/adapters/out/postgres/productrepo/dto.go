// Package productrepo reads the product catalog used to snapshot product
// identity and pricing into order lines.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the database row for a catalog product. Orders reference
// products weakly; a product row cannot be removed while order lines point at
// it, but the order never re-reads it after snapshotting.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Code     string          `gorm:"type:varchar(64);uniqueIndex"`
	Price    decimal.Decimal `gorm:"type:decimal(16,2)"`
	Quantity int
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}
