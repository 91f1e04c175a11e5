package ports

import (
	"context"

	"dinein/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external consumers about order lifecycle changes.
// Publishing happens after the owning transaction commits; a publish failure
// never rolls back the state change.
type OrderEventPublisher interface {
	// PublishStatusChanged announces that the order reached a new status.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error

	// Close releases the underlying connection.
	Close() error
}
