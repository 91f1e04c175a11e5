// Package kernel provides core domain primitives shared by every aggregate
// in the dinein system. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Name: A non-blank display name
//   - Price: A non-negative money amount in minor units with arithmetic helpers
//   - Quantity: A non-negative count of products or menus
//   - NumberOfGuests: A non-negative guest count for a table
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// compare by value, making them suitable for concurrent use.
package kernel
