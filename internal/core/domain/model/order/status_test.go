package order_test

import (
	"fmt"
	"testing"

	"dinein/internal/core/domain/model/order"
	"dinein/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Cooking))
		assert.Equal(t, 2, int(order.Meal))
		assert.Equal(t, 3, int(order.Completion))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Cooking,
			order.Meal,
			order.Completion,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(4),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Cooking, "Cooking"},
			{order.Meal, "Meal"},
			{order.Completion, "Completion"},
		}

		for _, tc := range testCases {
			result := tc.status.String()
			assert.Equal(t, tc.expected, result)
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected order.Status
		}{
			{"Cooking", order.Cooking},
			{"Meal", order.Meal},
			{"Completion", order.Completion},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.value)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown status names", func(t *testing.T) {
		for _, value := range []string{"", "Unknown", "cooking", "DONE"} {
			_, err := order.StatusFromString(value)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsActive(t *testing.T) {
	t.Run("cooking and meal are active", func(t *testing.T) {
		assert.True(t, order.Cooking.IsActive())
		assert.True(t, order.Meal.IsActive())
	})

	t.Run("completion is not active", func(t *testing.T) {
		assert.False(t, order.Completion.IsActive())
	})
}

func TestStatus_ChangeTo(t *testing.T) {
	t.Run("should allow any valid target before completion", func(t *testing.T) {
		testCases := []struct {
			from   order.Status
			target order.Status
		}{
			{order.Cooking, order.Meal},
			{order.Cooking, order.Completion},
			{order.Meal, order.Completion},
			{order.Meal, order.Cooking},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.target), func(t *testing.T) {
				got, err := tc.from.ChangeTo(tc.target)

				require.NoError(t, err)
				assert.Equal(t, tc.target, got)
			})
		}
	})

	t.Run("should block any transition out of completion", func(t *testing.T) {
		targets := []order.Status{order.Cooking, order.Meal, order.Completion}

		for _, target := range targets {
			t.Run(fmt.Sprintf("completion to %s", target), func(t *testing.T) {
				_, err := order.Completion.ChangeTo(target)

				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrOrderAlreadyCompleted)
			})
		}
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Cooking.ChangeTo(order.Unknown)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}
