// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and their
// database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate.
// Items live in their own table and are managed explicitly by the
// repository; there is no ORM-level association or cascade.
type OrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Created time.Time
	Status  int `gorm:"index"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database row for one line item. The order_id
// column is the ownership reference; item rows never exist without their
// order and are deleted in the same transaction that removes or replaces
// them.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Product  int
	Size     int
	Quantity int       `gorm:"check:quantity >= 1 AND quantity <= 10"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Position int       `gorm:"not null"`
}

// TableName specifies the database table name for item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation:
// one order row plus one row per item. The position column records the
// item's place in the aggregate's sequence; reads order by it so the
// sequence survives the round trip.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID().Bytes(),
			Product:  int(item.Product()),
			Size:     int(item.Size()),
			Quantity: item.Quantity(),
			OrderID:  aggregate.ID().Bytes(),
			Position: i,
		})
	}

	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		Created: aggregate.Created(),
		Status:  int(aggregate.Status()),
	}, items
}

// toDomain converts database rows back to an order aggregate,
// re-validating every invariant using RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, err := kernel.UUIDFromBytes(itemDTO.ID[:])
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(itemID, order.Product(itemDTO.Product), order.Size(itemDTO.Size), itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Created, order.Status(dto.Status), items)
}
