// Package customerrepo reads the customer directory used to prefill order
// customer snapshots.
package customerrepo

import "github.com/google/uuid"

// CustomerDTO is the database row for a registered customer.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Phone   string    `gorm:"type:varchar(32)"`
	Email   string    `gorm:"type:varchar(255)"`
	Address string
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}
