package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrSearchOrdersQueryIsNotConstructed is returned when a SearchOrdersQuery
// was not created via NewSearchOrdersQuery.
var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

const (
	defaultLimit = 20
	maxLimit     = 100

	// SortOrderAsc and SortOrderDesc are the accepted sort directions.
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortColumns whitelists sortable fields and maps them to columns. Anything
// outside this map is rejected, never interpolated into SQL.
func sortColumns() map[string]string {
	return map[string]string{
		"orderNumber":  "order_number",
		"customerName": "customer_name",
		"orderDate":    "order_date",
		"grandTotal":   "grand_total",
		"status":       "status",
	}
}

// SearchOrdersQuery carries normalized search criteria: free text over order
// number, customer name, and phone; optional status filter; an inclusive
// orderDate range; and pagination. The constructor trims input, defaults the
// sort to orderDate desc, defaults limit to 20, and clamps it to 100.
type SearchOrdersQuery struct { //nolint:recvcheck // pointer receivers used for construction only
	search         string
	status         string
	paymentStatus  string
	startDate      *time.Time
	endDate        *time.Time
	includeDeleted bool
	sortField      string
	sortOrder      string
	page           int
	limit          int

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery validates and normalizes search criteria. Empty
// sortField and sortOrder fall back to the defaults; unknown values are
// rejected.
func NewSearchOrdersQuery(
	search string,
	status string,
	paymentStatus string,
	startDate *time.Time,
	endDate *time.Time,
	includeDeleted bool,
	sortField string,
	sortOrder string,
	page int,
	limit int,
) (SearchOrdersQuery, error) {
	q := SearchOrdersQuery{
		search:         strings.TrimSpace(search),
		status:         strings.TrimSpace(status),
		paymentStatus:  strings.TrimSpace(paymentStatus),
		startDate:      startDate,
		endDate:        endDate,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setSort(sortField, sortOrder),
		q.setPagination(page, limit),
	); err != nil {
		return SearchOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Search returns the trimmed free-text term, empty when unfiltered.
func (q SearchOrdersQuery) Search() string { return q.search }

// Status returns the status filter, empty when unfiltered.
func (q SearchOrdersQuery) Status() string { return q.status }

// PaymentStatus returns the payment-status filter, empty when unfiltered.
func (q SearchOrdersQuery) PaymentStatus() string { return q.paymentStatus }

// StartDate returns the inclusive lower bound on orderDate, nil when open.
func (q SearchOrdersQuery) StartDate() *time.Time { return q.startDate }

// EndDate returns the inclusive upper bound on orderDate, nil when open.
func (q SearchOrdersQuery) EndDate() *time.Time { return q.endDate }

// IncludeDeleted reports whether soft-deleted orders are in scope.
func (q SearchOrdersQuery) IncludeDeleted() bool { return q.includeDeleted }

// SortField returns the whitelisted sort field.
func (q SearchOrdersQuery) SortField() string { return q.sortField }

// SortOrder returns "asc" or "desc".
func (q SearchOrdersQuery) SortOrder() string { return q.sortOrder }

// Page returns the 1-based page number.
func (q SearchOrdersQuery) Page() int { return q.page }

// Limit returns the page size.
func (q SearchOrdersQuery) Limit() int { return q.limit }

func (q *SearchOrdersQuery) setSort(sortField, sortOrder string) error {
	sortField = strings.TrimSpace(sortField)
	if sortField == "" {
		sortField = "orderDate"
		if strings.TrimSpace(sortOrder) == "" {
			sortOrder = SortOrderDesc
		}
	}
	if _, ok := sortColumns()[sortField]; !ok {
		return errs.NewValueIsInvalidError("sortField")
	}

	sortOrder = strings.ToLower(strings.TrimSpace(sortOrder))
	if sortOrder == "" {
		sortOrder = SortOrderAsc
	}
	if sortOrder != SortOrderAsc && sortOrder != SortOrderDesc {
		return errs.NewValueIsInvalidError("sortOrder")
	}

	q.sortField = sortField
	q.sortOrder = sortOrder
	return nil
}

func (q *SearchOrdersQuery) setPagination(page, limit int) error {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	q.page = page
	q.limit = limit
	return nil
}

// SearchOrdersQueryResponse is one page of search results. Items carry no
// lines; the single-order query returns the full read model.
type SearchOrdersQueryResponse struct {
	Items      []OrderResponse
	Page       int
	Limit      int
	TotalItems int64
	TotalPages int
}
