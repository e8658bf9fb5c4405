package orderrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// The connection must be opened with TranslateError so unique violations
// surface as gorm.ErrDuplicatedKey.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the aggregate and its items in one statement batch. A duplicate
// order number maps to ConflictError so the caller can retry with a fresh
// number.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderNumber", dto.OrderNumber, err)
		}
		return err
	}

	return nil
}

// Update persists the aggregate conditioned on expectedUpdatedAt and replaces
// its item rows. A stale expectedUpdatedAt on a live row maps to
// ConflictError; a missing row to ObjectNotFoundError. Run inside a
// transaction so the order row and its lines change together.
func (r *GormOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	expectedUpdatedAt time.Time,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Map update so zero values (cleared notes, zero discount) are written.
	columns := map[string]any{
		"order_number":     dto.OrderNumber,
		"customer_id":      dto.CustomerID,
		"user_id":          dto.UserID,
		"customer_name":    dto.CustomerName,
		"customer_phone":   dto.CustomerPhone,
		"customer_email":   dto.CustomerEmail,
		"customer_address": dto.CustomerAddress,
		"order_date":       dto.OrderDate,
		"discount":         dto.Discount,
		"tax":              dto.Tax,
		"total":            dto.Total,
		"grand_total":      dto.GrandTotal,
		"status":           dto.Status,
		"payment_status":   dto.PaymentStatus,
		"payment_method":   dto.PaymentMethod,
		"shipping_method":  dto.ShippingMethod,
		"notes":            dto.Notes,
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND updated_at = ?", dto.ID, expectedUpdatedAt).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Unscoped().
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
		}
		return errs.NewConflictError("updatedAt", expectedUpdatedAt)
	}

	// Replace the whole line set; partial line diffs are not worth the races.
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves an aggregate with its items. includeDeleted widens the
// scope to soft-deleted rows.
func (r *GormOrderRepository) GetByID(
	ctx context.Context,
	id kernel.UUID,
	includeDeleted bool,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if includeDeleted {
		tx = tx.Unscoped()
	}

	var dto OrderDTO
	if err := tx.Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SoftDelete marks the order deleted. Double deletes are no-ops; a missing
// order maps to ObjectNotFoundError.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Unscoped().
		Select("id", "deleted_at").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("orderID", id.String())
		}
		return err
	}

	if dto.DeletedAt.Valid {
		return nil
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error
}

// Restore clears the soft-delete marker. Restoring a live order is a no-op;
// a missing order maps to ObjectNotFoundError.
func (r *GormOrderRepository) Restore(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Unscoped().
		Select("id", "deleted_at").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("orderID", id.String())
		}
		return err
	}

	if !dto.DeletedAt.Valid {
		return nil
	}

	return r.db.WithContext(ctx).
		Unscoped().
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("deleted_at", nil).Error
}

// GetStalePendingUnpaid retrieves live orders still pending and unpaid that
// were created before the cutoff.
func (r *GormOrderRepository) GetStalePendingUnpaid(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND payment_status = ? AND created_at < ?",
			order.StatusPending.String(), order.PaymentStatusUnpaid.String(), cutoff).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
