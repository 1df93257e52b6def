package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// An order starts in Created. The only transitions reachable through the
// exposed operations are:
//
//	Created ──pay──> Paid
//	<any>  ──cancel──> Cancelled
//
// Both transitions are unconditional: a paid order can be cancelled and a
// cancelled order can be paid. This mirrors the behavior of the ordering
// system this service fronts; Cancel and Pay on Order are the single place
// a transition guard would go if that ever changes.
//
// Progress, Dispatched and Delivered are reserved states: they are valid
// values when restoring rows from the store but no operation produces them.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// StatusCreated is the initial status assigned at creation.
	StatusCreated

	// StatusPaid indicates payment has been registered for the order.
	StatusPaid

	// StatusProgress is a reserved state; no operation transitions into it.
	StatusProgress

	// StatusCancelled indicates the order was cancelled.
	StatusCancelled

	// StatusDispatched is a reserved state; no operation transitions into it.
	StatusDispatched

	// StatusDelivered is a reserved state; no operation transitions into it.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:    "unknown",
		StatusCreated:    "created",
		StatusPaid:       "paid",
		StatusProgress:   "progress",
		StatusCancelled:  "cancelled",
		StatusDispatched: "dispatched",
		StatusDelivered:  "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:    "created",
		StatusPaid:       "paid",
		StatusProgress:   "progress",
		StatusCancelled:  "cancelled",
		StatusDispatched: "dispatched",
		StatusDelivered:  "delivered",
	}
}

// AllStatuses returns the valid statuses in declaration order.
func AllStatuses() []Status {
	return []Status{StatusCreated, StatusPaid, StatusProgress, StatusCancelled, StatusDispatched, StatusDelivered}
}

// StatusFromString parses the lowercase wire form of a status.
func StatusFromString(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the enumeration.
// UnknownStatus (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, which is also its
// JSON representation. Database rows store the integer value. Invalid
// values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Cancel transitions to StatusCancelled. The transition is valid from any
// source status, including StatusPaid and StatusCancelled itself.
func (s Status) Cancel() Status {
	return StatusCancelled
}

// Pay transitions to StatusPaid. The transition is valid from any source
// status, including StatusCancelled and StatusPaid itself.
func (s Status) Pay() Status {
	return StatusPaid
}
