// Package kernel provides shared domain primitives used across the order
// model. It currently contains the UUID value object that identifies orders
// and order items.
//
// Kernel types are value objects: immutable, comparable, and validated at
// construction time. They carry no persistence or transport concerns.
package kernel
