package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRow mirrors the orders table for read-side scanning.
type orderRow struct {
	ID              uuid.UUID
	OrderNumber     string
	CustomerID      *uuid.UUID
	UserID          *uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	OrderDate       time.Time
	Discount        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	GrandTotal      decimal.Decimal
	Status          string
	PaymentStatus   string
	PaymentMethod   string
	ShippingMethod  string
	Notes           string
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// itemRow mirrors the order_items table for read-side scanning.
type itemRow struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	Notes       string
}

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle retrieves the order and its lines. A soft-deleted order is reported
// as ObjectNotFoundError unless the query includes deleted orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Where("id = ?", query.OrderID().Bytes())
	if !query.IncludeDeleted() {
		tx = tx.Where("deleted_at IS NULL")
	}

	var row orderRow
	if err := tx.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	var items []itemRow
	if err := h.db.WithContext(ctx).
		Table("order_items").
		Where("order_id = ?", query.OrderID().Bytes()).
		Order("id").
		Find(&items).Error; err != nil {
		return OrderResponse{}, err
	}

	return buildOrderResponse(row, items)
}

func buildOrderResponse(row orderRow, items []itemRow) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	customerID, err := optionalUUID(row.CustomerID)
	if err != nil {
		return OrderResponse{}, err
	}
	userID, err := optionalUUID(row.UserID)
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:              id,
		OrderNumber:     row.OrderNumber,
		CustomerID:      customerID,
		UserID:          userID,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		CustomerEmail:   row.CustomerEmail,
		CustomerAddress: row.CustomerAddress,
		OrderDate:       row.OrderDate,
		Discount:        kernel.NewMoneyFromDecimal(row.Discount),
		Tax:             kernel.NewMoneyFromDecimal(row.Tax),
		Total:           kernel.NewMoneyFromDecimal(row.Total),
		GrandTotal:      kernel.NewMoneyFromDecimal(row.GrandTotal),
		Status:          row.Status,
		PaymentStatus:   row.PaymentStatus,
		PaymentMethod:   row.PaymentMethod,
		ShippingMethod:  row.ShippingMethod,
		Notes:           row.Notes,
		DeletedAt:       row.DeletedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	resp.Items = make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemID, idErr := kernel.UUIDFromBytes(item.ID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		productID, pidErr := kernel.UUIDFromBytes(item.ProductID[:])
		if pidErr != nil {
			return OrderResponse{}, pidErr
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          itemID,
			ProductID:   productID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   kernel.NewMoneyFromDecimal(item.UnitPrice),
			Discount:    kernel.NewMoneyFromDecimal(item.Discount),
			Total:       kernel.NewMoneyFromDecimal(item.Total),
			Notes:       item.Notes,
		})
	}

	return resp, nil
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
