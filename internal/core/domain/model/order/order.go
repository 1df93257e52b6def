package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root representing one customer purchase. It owns
// its line items exclusively and manages the order lifecycle from creation
// through payment or cancellation to deletion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must own at least one item at all times
//   - The creation timestamp is set once and never changes
//   - Status is always a member of the Status enumeration
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; items can only be
// swapped wholesale through ReplaceItems, never merged or mutated in place.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// created is the creation timestamp, immutable after construction
	created time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items is the non-empty set of line items owned by this order
	items []*Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with status StatusCreated and the current
// UTC time as its creation timestamp. The item set must be non-empty and
// every item must be valid.
//
// Example:
//
//	item, _ := order.NewItem(kernel.NewUUID(), order.Cheese, order.Small, 1)
//	o, err := order.NewOrder(kernel.NewUUID(), []*order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, items []*Item) (*Order, error) {
	o := &Order{
		created:       time.Now().UTC(),
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder
// it accepts an existing creation timestamp and status; all invariants are
// still enforced, including the non-empty item set.
func RestoreOrder(id kernel.UUID, created time.Time, status Status, items []*Item) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreated(created),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Created returns the order's creation timestamp.
func (o *Order) Created() time.Time {
	return o.created
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items. The slice is shared with the
// aggregate; callers must not modify it.
func (o *Order) Items() []*Item {
	return o.items
}

// ReplaceItems swaps the order's entire item set for the given one.
// Replacement is all-or-nothing: the new set must be non-empty and fully
// valid, and the previous items are discarded. Status, id and creation
// timestamp are untouched.
func (o *Order) ReplaceItems(items []*Item) error {
	return o.setItems(items)
}

// Cancel sets the status to StatusCancelled. The transition is applied
// regardless of the current status, including StatusPaid and
// StatusCancelled itself.
func (o *Order) Cancel() {
	o.status = o.status.Cancel()
}

// Pay sets the status to StatusPaid. The transition is applied regardless
// of the current status, including StatusCancelled and StatusPaid itself.
func (o *Order) Pay() {
	o.status = o.status.Pay()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreated(created time.Time) error {
	if created.IsZero() {
		return errs.NewValueIsRequiredError("created")
	}
	o.created = created
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items must contain at least one item")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
