package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Row shapes scanned from the orders and order_items tables.
// Enum columns are stored as their integer values.
type (
	orderRow struct {
		ID      uuid.UUID
		Created time.Time
		Status  int
	}

	itemRow struct {
		ID       uuid.UUID
		Product  int
		Size     int
		Quantity int
		OrderID  uuid.UUID
	}
)

// fetchItems loads the item rows for the given order ids, keyed by owner.
// Items come back in position order, the sequence they were written in.
func fetchItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]itemRow, error) {
	itemsByOrder := make(map[uuid.UUID][]itemRow, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product,
			size,
			quantity,
			order_id
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row itemRow
		if err = rows.Scan(&row.ID, &row.Product, &row.Size, &row.Quantity, &row.OrderID); err != nil {
			return nil, err
		}
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], row)
	}

	return itemsByOrder, rows.Err()
}

// restoreAggregate rebuilds an order aggregate from its scanned rows,
// re-validating every invariant on the way out of the store.
func restoreAggregate(row orderRow, items []itemRow) (*order.Order, error) {
	domainItems := make([]*order.Item, 0, len(items))
	for _, item := range items {
		itemID, err := kernel.UUIDFromBytes(item.ID[:])
		if err != nil {
			return nil, err
		}

		domainItem, err := order.NewItem(itemID, order.Product(item.Product), order.Size(item.Size), item.Quantity)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, domainItem)
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(orderID, row.Created, order.Status(row.Status), domainItems)
}
