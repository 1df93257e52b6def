package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders from the database, applying the
// optional cancellation filter and result limit.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, err := NewListOrdersQuery(nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the list query. Orders come back in creation order so
// results are deterministic; when a limit is set at most that many orders
// are returned. The two filtered sets (cancelled=true and cancelled=false)
// partition the unfiltered set.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	sql := `
		SELECT
			id,
			created,
			status
		FROM orders
	`
	args := make([]any, 0, 2)

	if query.Cancelled() != nil {
		if *query.Cancelled() {
			sql += ` WHERE status = ?`
		} else {
			sql += ` WHERE status != ?`
		}
		args = append(args, int(order.StatusCancelled))
	}

	sql += ` ORDER BY created, id`

	if query.Limit() != nil {
		sql += ` LIMIT ?`
		args = append(args, *query.Limit())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(&row.ID, &row.Created, &row.Status); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		orderRows = append(orderRows, row)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return h.assemble(ctx, orderRows)
}

func (h ListOrdersQueryHandler) assemble(ctx context.Context, orderRows []orderRow) (ListOrdersQueryResponse, error) {
	orderIDs := make([]uuid.UUID, 0, len(orderRows))
	for _, row := range orderRows {
		orderIDs = append(orderIDs, row.ID)
	}

	itemsByOrder, err := fetchItems(ctx, h.db, orderIDs)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]*order.Order, 0, len(orderRows))
	for _, row := range orderRows {
		aggregate, restoreErr := restoreAggregate(row, itemsByOrder[row.ID])
		if restoreErr != nil {
			return ListOrdersQueryResponse{}, restoreErr
		}
		orders = append(orders, aggregate)
	}

	return ListOrdersQueryResponse{Orders: orders}, nil
}
