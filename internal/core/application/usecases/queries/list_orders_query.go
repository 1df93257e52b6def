// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// Query handlers read directly from the database and reconstruct order
// aggregates for the callers.
package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// Bounds for the optional list limit.
const (
	MinLimit = 1
	MaxLimit = 10
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders with an optional cancellation filter and
// an optional result limit.
//
// Filter semantics:
//   - cancelled absent: no status predicate
//   - cancelled=true:  only orders with status cancelled
//   - cancelled=false: all orders with status other than cancelled
//
// The limit, when present, must lie in [MinLimit, MaxLimit]; the bound is
// enforced here in the constructor, before any query executes.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	cancelled *bool
	limit     *int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Nil parameters mean
// the caller omitted them.
func NewListOrdersQuery(cancelled *bool, limit *int) (ListOrdersQuery, error) {
	if limit != nil && (*limit < MinLimit || *limit > MaxLimit) {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", *limit, MinLimit, MaxLimit)
	}

	return ListOrdersQuery{
		cancelled: cancelled,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Cancelled returns the optional cancellation filter.
func (q ListOrdersQuery) Cancelled() *bool {
	return q.cancelled
}

// Limit returns the optional, already validated result limit.
func (q ListOrdersQuery) Limit() *int {
	return q.limit
}

// ListOrdersQueryResponse carries the orders matching the query.
type ListOrdersQueryResponse struct {
	Orders []*order.Order
}
