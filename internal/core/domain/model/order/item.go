package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Quantity bounds for a single order item. A request that omits the
// quantity gets DefaultQuantity at the application boundary.
const (
	MinQuantity     = 1
	MaxQuantity     = 10
	DefaultQuantity = 1
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item owned exclusively by one Order. It has no identity
// outside its order: replacing or deleting the order's item set deletes
// the superseded items.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Product and size must be members of their enumerations
//   - Quantity must be within [MinQuantity, MaxQuantity]
type Item struct {
	id       kernel.UUID
	product  Product
	size     Size
	quantity int

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a validated line item. This is the only way to create a
// valid Item; identifiers are generated server-side by the caller.
func NewItem(id kernel.UUID, product Product, size Size, quantity int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(product),
		item.setSize(size),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Product returns the ordered product.
func (i *Item) Product() Product {
	return i.product
}

// Size returns the ordered portion size.
func (i *Item) Size() Size {
	return i.size
}

// Quantity returns how many units of the product were ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProduct(product Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	i.product = product
	return nil
}

func (i *Item) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	i.size = size
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}
