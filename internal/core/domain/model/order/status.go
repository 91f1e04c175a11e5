package order

import (
	"errors"
	"fmt"

	"dinein/internal/pkg/errs"
)

// ErrOrderAlreadyCompleted is returned when a status change is attempted on an
// order that has reached Completion. Completion is terminal: no transition out
// of it is permitted, including a no-op change to Completion itself.
var ErrOrderAlreadyCompleted = errors.New("completed order cannot change its status")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Cooking ──> Meal ──> Completion
//
// The only hard gate the machine enforces is that nothing leaves Completion.
// Forward-only ordering between Cooking and Meal is a policy left to callers;
// the state machine applies any requested valid target as long as the order
// is not completed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cooking is the initial status when an order is first created.
	// The kitchen is preparing the order's menus.
	Cooking

	// Meal indicates the prepared menus have been served and the guests are eating.
	Meal

	// Completion indicates the order is finished and billed.
	// This is a final state with no further transitions allowed.
	Completion
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Cooking:    "Cooking",
		Meal:       "Meal",
		Completion: "Completion",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:    "Cooking",
		Meal:       "Meal",
		Completion: "Completion",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Cooking, Meal, Completion. Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string representation.
// Used when accepting status changes from external callers.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// IsActive reports whether the status still blocks table and group mutations.
// An order is active until it reaches Completion.
func (s Status) IsActive() bool {
	return s != Completion
}

// ChangeTo validates a transition to the target status.
//
// Valid transitions: any valid target from Cooking or Meal.
// Invalid transitions: anything out of Completion (ErrOrderAlreadyCompleted),
// and any invalid target value.
//
// Returns the target status on success.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s == Completion {
		return Unknown, ErrOrderAlreadyCompleted
	}

	return target, nil
}
