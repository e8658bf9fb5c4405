package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created via NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order read model including its lines.
// includeDeleted widens the scope to soft-deleted orders.
type GetOrderQuery struct {
	orderID        kernel.UUID
	includeDeleted bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID, includeDeleted bool) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID:        orderID,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// IncludeDeleted reports whether soft-deleted orders are visible.
func (q GetOrderQuery) IncludeDeleted() bool { return q.includeDeleted }

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ProductCode string
	Quantity    int
	UnitPrice   kernel.Money
	Discount    kernel.Money
	Total       kernel.Money
	Notes       string
}

// OrderResponse is the full order read model.
type OrderResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerID      *kernel.UUID
	UserID          *kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	OrderDate       time.Time
	Items           []OrderItemResponse
	Discount        kernel.Money
	Tax             kernel.Money
	Total           kernel.Money
	GrandTotal      kernel.Money
	Status          string
	PaymentStatus   string
	PaymentMethod   string
	ShippingMethod  string
	Notes           string
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
