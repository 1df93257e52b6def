package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrItemInputIsNotConstructed = errors.New(
	"ItemInput must be created via NewItemInput constructor",
)

// ItemInput is the validated specification of one line item as supplied by
// a caller of create or update. Product and size arrive in their lowercase
// wire form; quantity is optional and defaults to order.DefaultQuantity.
//
// All structural validation happens here, before any transaction is opened:
// unknown products and sizes and out-of-range quantities never reach the
// repository.
type ItemInput struct { //nolint:recvcheck //using for validation
	product  order.Product
	size     order.Size
	quantity int

	guard guard.ConstructorGuard
}

// NewItemInput parses and validates one incoming line item.
// A nil quantity means the caller omitted it and gets the default of 1.
func NewItemInput(product, size string, quantity *int) (ItemInput, error) {
	input := ItemInput{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		input.setProduct(product),
		input.setSize(size),
		input.setQuantity(quantity),
	); err != nil {
		return ItemInput{}, err
	}

	return input, nil
}

// Validate ensures the input was created through the constructor.
func (i ItemInput) Validate() error {
	return i.guard.Validate(ErrItemInputIsNotConstructed)
}

// Product returns the parsed product.
func (i ItemInput) Product() order.Product {
	return i.product
}

// Size returns the parsed size.
func (i ItemInput) Size() order.Size {
	return i.size
}

// Quantity returns the requested quantity, defaulted when it was omitted.
func (i ItemInput) Quantity() int {
	return i.quantity
}

func (i *ItemInput) setProduct(product string) error {
	parsed, err := order.ProductFromString(product)
	if err != nil {
		return err
	}

	i.product = parsed
	return nil
}

func (i *ItemInput) setSize(size string) error {
	parsed, err := order.SizeFromString(size)
	if err != nil {
		return err
	}

	i.size = parsed
	return nil
}

func (i *ItemInput) setQuantity(quantity *int) error {
	if quantity == nil {
		i.quantity = order.DefaultQuantity
		return nil
	}
	if *quantity < order.MinQuantity || *quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", *quantity, order.MinQuantity, order.MaxQuantity)
	}

	i.quantity = *quantity
	return nil
}

// validateItemInputs checks the shared invariant of create and update:
// the item list is non-empty and every entry went through NewItemInput.
func validateItemInputs(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items must contain at least one item")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}
