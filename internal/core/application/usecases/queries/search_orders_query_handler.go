package queries

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler pages through the orders read model.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order searches.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle counts the matching orders and returns the requested page.
// totalPages is ceil(totalItems/limit); a page past the end yields an empty
// item list, not an error. Soft-deleted orders are excluded from both the
// items and the count unless the query includes them.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) (SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	resp := SearchOrdersQueryResponse{
		Items: make([]OrderResponse, 0),
		Page:  query.Page(),
		Limit: query.Limit(),
	}

	if err := h.scope(ctx, query).Count(&resp.TotalItems).Error; err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	resp.TotalPages = int((resp.TotalItems + int64(query.Limit()) - 1) / int64(query.Limit()))
	if resp.TotalItems == 0 || query.Page() > resp.TotalPages {
		return resp, nil
	}

	column := sortColumns()[query.SortField()]
	var rows []orderRow
	if err := h.scope(ctx, query).
		Order(fmt.Sprintf("%s %s, id asc", column, query.SortOrder())).
		Offset((query.Page() - 1) * query.Limit()).
		Limit(query.Limit()).
		Find(&rows).Error; err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	for _, row := range rows {
		item, err := buildOrderResponse(row, nil)
		if err != nil {
			return SearchOrdersQueryResponse{}, err
		}
		resp.Items = append(resp.Items, item)
	}

	return resp, nil
}

// scope builds the filtered base query. The soft-delete filter lives here so
// the count and the page can never disagree on visibility.
func (h SearchOrdersQueryHandler) scope(ctx context.Context, query SearchOrdersQuery) *gorm.DB {
	tx := h.db.WithContext(ctx).Table("orders")

	if !query.IncludeDeleted() {
		tx = tx.Where("deleted_at IS NULL")
	}
	if search := query.Search(); search != "" {
		pattern := "%" + escapeLikeTerm(search) + "%"
		tx = tx.Where(
			"order_number ILIKE ? OR customer_name ILIKE ? OR customer_phone ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if status := query.Status(); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if paymentStatus := query.PaymentStatus(); paymentStatus != "" {
		tx = tx.Where("payment_status = ?", paymentStatus)
	}
	if start := query.StartDate(); start != nil {
		tx = tx.Where("order_date >= ?", *start)
	}
	if end := query.EndDate(); end != nil {
		tx = tx.Where("order_date <= ?", *end)
	}

	return tx
}

// escapeLikeTerm neutralizes LIKE wildcards in a user-supplied search term so
// it always matches literally.
func escapeLikeTerm(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
