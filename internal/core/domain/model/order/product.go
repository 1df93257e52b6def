package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Product is the closed set of articles an order item can refer to.
// Six food values and four beverage values; the menu is fixed.
type Product int

const (
	// UnknownProduct represents an invalid or undefined product.
	// This value (0) helps catch uninitialized Product values.
	UnknownProduct Product = iota

	Cheese
	Pepperoni
	Deluxe
	Hawaiian
	Canadian
	Veggie

	Coke
	Sprite
	Gingerale
	Icedtea
)

func getProductStrings() map[Product]string {
	return map[Product]string{
		UnknownProduct: "unknown",
		Cheese:         "cheese",
		Pepperoni:      "pepperoni",
		Deluxe:         "deluxe",
		Hawaiian:       "hawaiian",
		Canadian:       "canadian",
		Veggie:         "veggie",
		Coke:           "coke",
		Sprite:         "sprite",
		Gingerale:      "gingerale",
		Icedtea:        "icedtea",
	}
}

func getValidProductStrings() map[Product]string {
	//nolint:exhaustive // UnknownProduct is intentionally excluded as it's invalid
	return map[Product]string{
		Cheese:    "cheese",
		Pepperoni: "pepperoni",
		Deluxe:    "deluxe",
		Hawaiian:  "hawaiian",
		Canadian:  "canadian",
		Veggie:    "veggie",
		Coke:      "coke",
		Sprite:    "sprite",
		Gingerale: "gingerale",
		Icedtea:   "icedtea",
	}
}

// AllProducts returns the valid products in menu order.
// Used for error messages that name the accepted set.
func AllProducts() []Product {
	return []Product{Cheese, Pepperoni, Deluxe, Hawaiian, Canadian, Veggie, Coke, Sprite, Gingerale, Icedtea}
}

// ProductFromString parses the lowercase wire form of a product.
// The returned error names the accepted set.
func ProductFromString(s string) (Product, error) {
	for _, p := range AllProducts() {
		if p.String() == s {
			return p, nil
		}
	}
	return UnknownProduct, errs.NewValueIsInvalidErrorWithCause(
		"product",
		fmt.Errorf("%q is not one of %s", s, strings.Join(productNames(), ", ")),
	)
}

func productNames() []string {
	products := AllProducts()
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.String())
	}
	return names
}

// Validate checks that the Product is a member of the menu.
func (p Product) Validate() error {
	if _, ok := getValidProductStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("%d is not a valid product", p))
	}
	return nil
}

// String returns the lowercase name of the product, which is also its
// JSON representation. Database rows store the integer value.
func (p Product) String() string {
	if str, ok := getProductStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// IsBeverage reports whether the product belongs to the beverage half of
// the menu. Everything else on the menu is food.
func (p Product) IsBeverage() bool {
	switch p {
	case Coke, Sprite, Gingerale, Icedtea:
		return true
	default:
		return false
	}
}
