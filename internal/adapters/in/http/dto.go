package http

import (
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Monetary amounts ride JSON as decimal strings ("199.90"), never floats.

// ItemRequest is one requested order line.
type ItemRequest struct {
	ProductID string           `json:"productId" validate:"required,uuid"`
	Quantity  int              `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Discount  decimal.Decimal  `json:"discount"`
	Notes     string           `json:"notes,omitempty"`
}

// CreateOrderRequest is the POST /orders body. Either customerId or the
// name+phone snapshot pair must be present; the command enforces that.
type CreateOrderRequest struct {
	CustomerID      *string         `json:"customerId,omitempty" validate:"omitempty,uuid"`
	UserID          *string         `json:"userId,omitempty" validate:"omitempty,uuid"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	OrderDate       *time.Time      `json:"orderDate,omitempty"`
	Items           []ItemRequest   `json:"items" validate:"required,min=1,dive"`
	Discount        decimal.Decimal `json:"discount"`
	Tax             decimal.Decimal `json:"tax"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	ShippingMethod  string          `json:"shippingMethod,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// UpdateOrderRequest is the PUT /orders/:id body. Absent fields keep current
// values; a present items array replaces the whole line set.
type UpdateOrderRequest struct {
	Items          []ItemRequest    `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	Discount       *decimal.Decimal `json:"discount,omitempty"`
	Tax            *decimal.Decimal `json:"tax,omitempty"`
	PaymentMethod  *string          `json:"paymentMethod,omitempty"`
	ShippingMethod *string          `json:"shippingMethod,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// ChangeStatusRequest is the PATCH /orders/:id/status body.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ChangePaymentStatusRequest is the PATCH /orders/:id/payment body.
type ChangePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// ItemResponse is one order line in API responses.
type ItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductCode string          `json:"productCode"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Notes       string          `json:"notes,omitempty"`
}

// OrderResponse is the full order representation in API responses.
type OrderResponse struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerID      *string         `json:"customerId,omitempty"`
	UserID          *string         `json:"userId,omitempty"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	OrderDate       time.Time       `json:"orderDate"`
	Items           []ItemResponse  `json:"items,omitempty"`
	Discount        decimal.Decimal `json:"discount"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	ShippingMethod  string          `json:"shippingMethod,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// SearchOrdersResponse is one page of search results.
type SearchOrdersResponse struct {
	Items      []OrderResponse `json:"items"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalItems int64           `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func itemInputs(items []ItemRequest) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		var unitPrice *kernel.Money
		if item.UnitPrice != nil {
			price := kernel.NewMoneyFromDecimal(item.UnitPrice.Round(2))
			unitPrice = &price
		}

		inputs = append(inputs, commands.ItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Discount:  kernel.NewMoneyFromDecimal(item.Discount.Round(2)),
			Notes:     item.Notes,
		})
	}
	return inputs, nil
}

func fromAggregate(aggregate *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:              aggregate.ID().String(),
		OrderNumber:     aggregate.Number().String(),
		CustomerID:      optionalIDString(aggregate.CustomerID()),
		UserID:          optionalIDString(aggregate.UserID()),
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
		DeletedAt:       aggregate.DeletedAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	for _, item := range aggregate.Items() {
		resp.Items = append(resp.Items, ItemResponse{
			ID:          item.ID().String(),
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			ProductCode: item.ProductCode(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Discount:    item.Discount().Decimal(),
			Total:       item.Total().Decimal(),
			Notes:       item.Notes(),
		})
	}

	return resp
}

func fromReadModel(model queries.OrderResponse) OrderResponse {
	resp := OrderResponse{
		ID:              model.ID.String(),
		OrderNumber:     model.OrderNumber,
		CustomerID:      optionalIDString(model.CustomerID),
		UserID:          optionalIDString(model.UserID),
		CustomerName:    model.CustomerName,
		CustomerPhone:   model.CustomerPhone,
		CustomerEmail:   model.CustomerEmail,
		CustomerAddress: model.CustomerAddress,
		OrderDate:       model.OrderDate,
		Discount:        model.Discount.Decimal(),
		Tax:             model.Tax.Decimal(),
		Total:           model.Total.Decimal(),
		GrandTotal:      model.GrandTotal.Decimal(),
		Status:          model.Status,
		PaymentStatus:   model.PaymentStatus,
		PaymentMethod:   model.PaymentMethod,
		ShippingMethod:  model.ShippingMethod,
		Notes:           model.Notes,
		DeletedAt:       model.DeletedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}

	for _, item := range model.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Decimal(),
			Discount:    item.Discount.Decimal(),
			Total:       item.Total.Decimal(),
			Notes:       item.Notes,
		})
	}

	return resp
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
