// Package http exposes the order service over a JSON REST API using echo.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server wires HTTP routes to the command and query handlers.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	restoreOrderHandler        commands.RestoreOrderCommandHandler

	getOrderHandler     queries.GetOrderQueryHandler
	searchOrdersHandler queries.SearchOrdersQueryHandler

	validate *validator.Validate
}

// NewServer creates the HTTP server with all required handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	restoreOrderHandler commands.RestoreOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		changePaymentStatusHandler: changePaymentStatusHandler,
		deleteOrderHandler:         deleteOrderHandler,
		restoreOrderHandler:        restoreOrderHandler,
		getOrderHandler:            getOrderHandler,
		searchOrdersHandler:        searchOrdersHandler,
		validate:                   validator.New(),
	}
}

// RegisterRoutes mounts the API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.SearchOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/restore", s.RestoreOrder)
	api.PATCH("/orders/:id/status", s.ChangeStatus)
	api.PATCH("/orders/:id/payment", s.ChangePaymentStatus)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	customerID, err := optionalUUIDParam(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}
	userID, err := optionalUUIDParam(req.UserID)
	if err != nil {
		return writeError(ctx, err)
	}
	items, err := itemInputs(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	var orderDate time.Time
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, userID,
		req.CustomerName, req.CustomerPhone, req.CustomerEmail, req.CustomerAddress,
		orderDate, items,
		kernel.NewMoneyFromDecimal(req.Discount.Round(2)),
		kernel.NewMoneyFromDecimal(req.Tax.Round(2)),
		req.PaymentMethod, req.ShippingMethod, req.Notes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(aggregate))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	includeDeleted, _ := strconv.ParseBool(ctx.QueryParam("includeDeleted"))

	query, err := queries.NewGetOrderQuery(id, includeDeleted)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(model))
}

// SearchOrders handles GET /api/v1/orders.
func (s *Server) SearchOrders(ctx echo.Context) error {
	startDate, err := optionalTimeParam(ctx.QueryParam("startDate"))
	if err != nil {
		return writeError(ctx, err)
	}
	endDate, err := optionalEndDateParam(ctx.QueryParam("endDate"))
	if err != nil {
		return writeError(ctx, err)
	}

	includeDeleted, _ := strconv.ParseBool(ctx.QueryParam("includeDeleted"))
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	query, err := queries.NewSearchOrdersQuery(
		ctx.QueryParam("search"),
		ctx.QueryParam("status"),
		ctx.QueryParam("paymentStatus"),
		startDate, endDate,
		includeDeleted,
		ctx.QueryParam("sortField"),
		ctx.QueryParam("sortOrder"),
		page, limit,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := SearchOrdersResponse{
		Items:      make([]OrderResponse, 0, len(result.Items)),
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, fromReadModel(item))
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	var items []commands.ItemInput
	if req.Items != nil {
		items, err = itemInputs(req.Items)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id, items,
		optionalMoneyParam(req.Discount),
		optionalMoneyParam(req.Tax),
		req.PaymentMethod, req.ShippingMethod, req.Notes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// DeleteOrder handles DELETE /api/v1/orders/:id (soft delete).
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreOrder handles PATCH /api/v1/orders/:id/restore.
func (s *Server) RestoreOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRestoreOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.restoreOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// ChangeStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// ChangePaymentStatus handles PATCH /api/v1/orders/:id/payment.
func (s *Server) ChangePaymentStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangePaymentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	paymentStatus, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangePaymentStatusCommand(id, paymentStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.changePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func optionalUUIDParam(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalMoneyParam(raw *decimal.Decimal) *kernel.Money {
	if raw == nil {
		return nil
	}
	money := kernel.NewMoneyFromDecimal(raw.Round(2))
	return &money
}

const dateOnlyLayout = "2006-01-02"

func optionalTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, dateOnlyLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errs.NewValueIsInvalidError("date")
}

// optionalEndDateParam parses the upper bound of the inclusive order-date
// range. A date-only value means "through that day", so it is pushed to the
// day's last instant; a full timestamp is used as-is.
func optionalEndDateParam(raw string) (*time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		endOfDay := t.Add(24*time.Hour - time.Nanosecond)
		return &endOfDay, nil
	}
	return optionalTimeParam(raw)
}
