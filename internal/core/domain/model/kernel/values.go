package kernel

import (
	"fmt"
	"math"
	"strings"

	"dinein/internal/pkg/errs"
	"dinein/internal/pkg/guard"
)

// Validation errors for value objects that were not created through their constructors.
var (
	// ErrNameIsNotConstructed is returned when attempting to use an improperly initialized Name.
	ErrNameIsNotConstructed = errs.NewValueIsRequiredError("name must be created via NewName constructor")
	// ErrPriceIsNotConstructed is returned when attempting to use an improperly initialized Price.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice constructor")
	// ErrQuantityIsNotConstructed is returned when attempting to use an improperly initialized Quantity.
	ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity constructor")
	// ErrNumberOfGuestsIsNotConstructed is returned when attempting to use an improperly
	// initialized NumberOfGuests.
	ErrNumberOfGuestsIsNotConstructed = errs.NewValueIsRequiredError(
		"number of guests must be created via NewNumberOfGuests constructor")
)

// Name is a non-blank display name for products, menus and menu groups.
// Name is an immutable value object; the zero value is invalid and fails
// validation - use NewName to create instances.
type Name struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewName creates a Name from the given text.
// The text must contain at least one non-whitespace character.
func NewName(value string) (Name, error) {
	name := Name{
		guard: guard.NewConstructorGuard(),
	}

	if err := name.setValue(value); err != nil {
		return Name{}, err
	}

	return name, nil
}

// Validate checks if the Name was properly constructed via NewName.
func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}

// Value returns the name text.
func (n Name) Value() string {
	return n.value
}

// IsEqual compares two names by their text.
func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return n.value
}

func (n *Name) setValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	n.value = value
	return nil
}

// Price is a non-negative money amount expressed in minor currency units.
// Price is an immutable value object supporting the arithmetic needed for
// menu pricing checks. The zero value is invalid - use NewPrice.
//
// Example:
//
//	price, err := kernel.NewPrice(1500) // 15.00
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MultiplyQuantity(qty)
type Price struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from an amount in minor units.
// The amount must not be negative.
func NewPrice(amount int64) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setAmount(amount); err != nil {
		return Price{}, err
	}

	return price, nil
}

// Validate checks if the Price was properly constructed via NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the amount in minor units.
func (p Price) Amount() int64 {
	return p.amount
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) (Price, error) {
	if err := other.Validate(); err != nil {
		return Price{}, err
	}

	return NewPrice(p.amount + other.amount)
}

// MultiplyQuantity returns the price multiplied by a quantity.
func (p Price) MultiplyQuantity(quantity Quantity) (Price, error) {
	if err := quantity.Validate(); err != nil {
		return Price{}, err
	}

	return NewPrice(p.amount * quantity.Value())
}

// IsGreaterThan reports whether the price exceeds the other price.
func (p Price) IsGreaterThan(other Price) bool {
	return p.amount > other.amount
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String implements fmt.Stringer.
func (p Price) String() string {
	return fmt.Sprintf("Price(%d)", p.amount)
}

func (p *Price) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("price", amount, 0, int64(math.MaxInt64))
	}

	p.amount = amount
	return nil
}

// Quantity is a non-negative count of products within a menu or menus within
// an order line item. The zero value is invalid - use NewQuantity.
type Quantity struct { //nolint:recvcheck //using for validation
	value int64
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. The value must not be negative.
func NewQuantity(value int64) (Quantity, error) {
	quantity := Quantity{
		guard: guard.NewConstructorGuard(),
	}

	if err := quantity.setValue(value); err != nil {
		return Quantity{}, err
	}

	return quantity, nil
}

// Validate checks if the Quantity was properly constructed via NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the count.
func (q Quantity) Value() int64 {
	return q.value
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	return fmt.Sprintf("Quantity(%d)", q.value)
}

func (q *Quantity) setValue(value int64) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", value, 0, int64(math.MaxInt64))
	}

	q.value = value
	return nil
}

// NumberOfGuests is a non-negative count of guests seated at a table.
// The zero value is invalid - use NewNumberOfGuests.
type NumberOfGuests struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewNumberOfGuests creates a NumberOfGuests. The value must not be negative.
func NewNumberOfGuests(value int) (NumberOfGuests, error) {
	guests := NumberOfGuests{
		guard: guard.NewConstructorGuard(),
	}

	if err := guests.setValue(value); err != nil {
		return NumberOfGuests{}, err
	}

	return guests, nil
}

// Validate checks if the NumberOfGuests was properly constructed via NewNumberOfGuests.
func (g NumberOfGuests) Validate() error {
	return g.guard.Validate(ErrNumberOfGuestsIsNotConstructed)
}

// Value returns the guest count.
func (g NumberOfGuests) Value() int {
	return g.value
}

// IsEqual compares two guest counts by value.
func (g NumberOfGuests) IsEqual(other NumberOfGuests) bool {
	return g.value == other.value
}

// String implements fmt.Stringer.
func (g NumberOfGuests) String() string {
	return fmt.Sprintf("NumberOfGuests(%d)", g.value)
}

func (g *NumberOfGuests) setValue(value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError("numberOfGuests", value, 0, math.MaxInt)
	}

	g.value = value
	return nil
}
