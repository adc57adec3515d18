// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DiscountRepoFactory provides access to the discount repository within a transaction.
	DiscountRepoFactory interface {
		DiscountRepository() ports.DiscountRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only touch the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages transactions across the order, product,
	// discount and customer aggregates. Used by commands that coordinate
	// stock reservation and discount usage alongside order mutations.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		DiscountRepoFactory
		CustomerRepoFactory
	}

	// FulfillmentUoWFactory creates new unit of work instances for
	// cross-aggregate operations.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
