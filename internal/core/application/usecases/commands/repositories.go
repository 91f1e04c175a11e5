// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dinein/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MenuGroupRepoFactory provides access to the menu group repository within a transaction.
	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderTableRepoFactory provides access to the table repository within a transaction.
	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	// TableGroupRepoFactory provides access to the table group repository within a transaction.
	TableGroupRepoFactory interface {
		TableGroupRepository() ports.TableGroupRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// MenuGroupUoW manages transactions for menu-group-only operations.
	MenuGroupUoW interface {
		TxManager
		MenuGroupRepoFactory
	}

	// MenuGroupUoWFactory creates new menu group unit of work instances.
	MenuGroupUoWFactory interface {
		Create() MenuGroupUoW
	}

	// MenuUoW manages transactions for menu creation.
	// Menu creation reads menu groups and products to validate references
	// and pricing before the menu row is written.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		MenuGroupRepoFactory
		ProductRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderUoW manages transactions for order operations.
	// Order creation resolves the target table and the referenced menus
	// inside the same transaction that writes the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		OrderTableRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TableUoW manages transactions for single-table operations.
	// Loading a table through OrderTableRepository locks its row for the
	// rest of the transaction, so the active-order check and the write
	// cannot be split by a concurrent order insert.
	TableUoW interface {
		TxManager
		OrderTableRepoFactory
		OrderRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// TableGroupUoW manages transactions for group formation and dissolution.
	// Both operations span the group row, every member table row, and the
	// member tables' orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   groupRepo := uow.TableGroupRepository()
	//   tableRepo := uow.OrderTableRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TableGroupUoW interface {
		TxManager
		TableGroupRepoFactory
		OrderTableRepoFactory
		OrderRepoFactory
	}

	// TableGroupUoWFactory creates new table group unit of work instances.
	TableGroupUoWFactory interface {
		Create() TableGroupUoW
	}
)
