package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order by id from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its items.
// Returns errs.ObjectNotFoundError naming the missing id when no order
// with that id exists. Read-only.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&row.ID, &row.Created, &row.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	itemsByOrder, err := fetchItems(ctx, h.db, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}

	return restoreAggregate(row, itemsByOrder[row.ID])
}
