package productrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductCatalog implements ports.ProductCatalog over the products table.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a read-only catalog adapter.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetByID returns the product snapshot data or ObjectNotFoundError.
func (r *GormProductCatalog) GetByID(ctx context.Context, id kernel.UUID) (ports.ProductInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.ProductInfo{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProductInfo{}, errs.NewObjectNotFoundError("productID", id.String())
		}
		return ports.ProductInfo{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.ProductInfo{}, err
	}

	return ports.ProductInfo{
		ID:       productID,
		Name:     dto.Name,
		Code:     dto.Code,
		Price:    kernel.NewMoneyFromDecimal(dto.Price),
		Quantity: dto.Quantity,
	}, nil
}
