// Package orderrepo persists order aggregates with GORM, mapping between the
// domain model and the orders / order_items tables.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO is the database row for an order aggregate. The order number
// carries a unique index so concurrent creates cannot race past the
// application; monetary columns are exact decimals, never floats.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string     `gorm:"type:varchar(255)"`
	CustomerPhone   string     `gorm:"type:varchar(32)"`
	CustomerEmail   string     `gorm:"type:varchar(255)"`
	CustomerAddress string
	OrderDate       time.Time       `gorm:"index"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Discount        decimal.Decimal `gorm:"type:decimal(16,2)"`
	Tax             decimal.Decimal `gorm:"type:decimal(16,2)"`
	Total           decimal.Decimal `gorm:"type:decimal(16,2)"`
	GrandTotal      decimal.Decimal `gorm:"type:decimal(16,2)"`
	Status          string          `gorm:"type:varchar(16);index"`
	PaymentStatus   string          `gorm:"type:varchar(16);index"`
	PaymentMethod   string          `gorm:"type:varchar(64)"`
	ShippingMethod  string          `gorm:"type:varchar(64)"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the database row for one order line. Lines reference products
// weakly: product identity and pricing are snapshotted at order time.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	ProductName string    `gorm:"type:varchar(255)"`
	ProductCode string    `gorm:"type:varchar(64)"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(16,2)"`
	Discount    decimal.Decimal `gorm:"type:decimal(16,2)"`
	Total       decimal.Decimal `gorm:"type:decimal(16,2)"`
	Notes       string
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// CreatedAt and UpdatedAt are left to GORM; DeletedAt mirrors the aggregate's
// soft-delete marker.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.Number().String(),
		CustomerID:      optionalID(aggregate.CustomerID()),
		UserID:          optionalID(aggregate.UserID()),
		CustomerName:    aggregate.Customer().Name(),
		CustomerPhone:   aggregate.Customer().Phone(),
		CustomerEmail:   aggregate.Customer().Email(),
		CustomerAddress: aggregate.Customer().Address(),
		OrderDate:       aggregate.OrderDate(),
		Discount:        aggregate.Discount().Decimal(),
		Tax:             aggregate.Tax().Decimal(),
		Total:           aggregate.Total().Decimal(),
		GrandTotal:      aggregate.GrandTotal().Decimal(),
		Status:          aggregate.Status().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		PaymentMethod:   aggregate.PaymentMethod(),
		ShippingMethod:  aggregate.ShippingMethod(),
		Notes:           aggregate.Notes(),
	}

	if deletedAt := aggregate.DeletedAt(); deletedAt != nil {
		dto.DeletedAt = gorm.DeletedAt{Time: *deletedAt, Valid: true}
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(aggregate.ID(), item))
	}

	return dto
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID().Bytes(),
		OrderID:     orderID.Bytes(),
		ProductID:   item.ProductID().Bytes(),
		ProductName: item.ProductName(),
		ProductCode: item.ProductCode(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice().Decimal(),
		Discount:    item.Discount().Decimal(),
		Total:       item.Total().Decimal(),
		Notes:       item.Notes(),
	}
}

// toDomain reconstructs the aggregate from its rows via RestoreOrder, so a
// row that violates domain invariants cannot be loaded silently.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := optionalDomainID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	userID, err := optionalDomainID(dto.UserID)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerSnapshot(
		dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail, dto.CustomerAddress,
	)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		deletedAt = &dto.DeletedAt.Time
	}

	return order.RestoreOrder(
		id,
		order.Number(dto.OrderNumber),
		customerID,
		userID,
		customer,
		dto.OrderDate,
		items,
		kernel.NewMoneyFromDecimal(dto.Discount),
		kernel.NewMoneyFromDecimal(dto.Tax),
		status,
		paymentStatus,
		dto.PaymentMethod,
		dto.ShippingMethod,
		dto.Notes,
		deletedAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		productID,
		dto.ProductName,
		dto.ProductCode,
		dto.Quantity,
		kernel.NewMoneyFromDecimal(dto.UnitPrice),
		kernel.NewMoneyFromDecimal(dto.Discount),
		dto.Notes,
	)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
