// Package ports defines the persistence contracts of the order domain.
// These interfaces sit between the domain layer and infrastructure,
// so handlers can be tested against mocks and run against any store.
package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored and loaded together with their order.
type OrderRepository interface {
	// Add persists a new order with all of its items and returns the stored
	// aggregate carrying the generated order and item ids.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update overwrites an existing order in full. Items the aggregate no longer
	// holds are removed, items without an id are inserted.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes an order and its items. Deleting a missing id is not an error.
	Delete(ctx context.Context, id kernel.ID) error

	// Reset removes every order and item and restarts both id sequences at 1.
	//
	// Example:
	//   if err := repo.Reset(ctx); err != nil {
	//       return fmt.Errorf("failed to reset orders: %w", err)
	//   }
	//   created, _ := repo.Add(ctx, o) // created.ID() == 1
	Reset(ctx context.Context) error
}
