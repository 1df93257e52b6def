package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Size is the closed set of portion sizes an order item can have.
type Size int

const (
	// UnknownSize represents an invalid or undefined size.
	UnknownSize Size = iota

	Small
	Medium
	Large
	Xlarge
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		UnknownSize: "unknown",
		Small:       "small",
		Medium:      "medium",
		Large:       "large",
		Xlarge:      "xlarge",
	}
}

func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // UnknownSize is intentionally excluded as it's invalid
	return map[Size]string{
		Small:  "small",
		Medium: "medium",
		Large:  "large",
		Xlarge: "xlarge",
	}
}

// AllSizes returns the valid sizes from smallest to largest.
func AllSizes() []Size {
	return []Size{Small, Medium, Large, Xlarge}
}

// SizeFromString parses the lowercase wire form of a size.
// The returned error names the accepted set.
func SizeFromString(s string) (Size, error) {
	for _, size := range AllSizes() {
		if size.String() == s {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause(
		"size",
		fmt.Errorf("%q is not one of %s", s, strings.Join(sizeNames(), ", ")),
	)
}

func sizeNames() []string {
	sizes := AllSizes()
	names := make([]string, 0, len(sizes))
	for _, size := range sizes {
		names = append(names, size.String())
	}
	return names
}

// Validate checks that the Size is a member of the enumeration.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the lowercase name of the size, which is also its
// JSON representation. Database rows store the integer value.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
