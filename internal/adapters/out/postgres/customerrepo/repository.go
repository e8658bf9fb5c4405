package customerrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerDirectory implements ports.CustomerDirectory over the customers
// table.
type GormCustomerDirectory struct {
	db *gorm.DB
}

// NewGormCustomerDirectory creates a read-only directory adapter.
func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// GetByID returns the customer record or ObjectNotFoundError.
func (r *GormCustomerDirectory) GetByID(ctx context.Context, id kernel.UUID) (ports.CustomerInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.CustomerInfo{}, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CustomerInfo{}, errs.NewObjectNotFoundError("customerID", id.String())
		}
		return ports.CustomerInfo{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CustomerInfo{}, err
	}

	return ports.CustomerInfo{
		ID:      customerID,
		Name:    dto.Name,
		Phone:   dto.Phone,
		Email:   dto.Email,
		Address: dto.Address,
	}, nil
}
