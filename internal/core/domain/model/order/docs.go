// Package order provides the domain model for customer orders. It implements
// the Order aggregate root that exclusively owns its line items, together
// with the closed Product, Size and Status enumerations.
//
// The package includes:
//   - Order: the aggregate root managing identity, lifecycle and the item set
//   - Item: a line item with product, size and a bounded quantity
//   - Product, Size, Status: fixed vocabularies with lowercase wire forms
//
// Key business rules:
//   - Every order owns at least one item at all times
//   - Item quantity is an integer in [1, 10], defaulting to 1
//   - Orders start in the created status
//   - Cancel and Pay are unconditional transitions; progress, dispatched
//     and delivered are reserved statuses no operation produces
//   - Updating an order replaces its entire item set, never merges it
//
// The package follows the same conventions as the rest of the core model:
// private fields, factory constructors, and Validate methods that detect
// bypassed construction.
package order
