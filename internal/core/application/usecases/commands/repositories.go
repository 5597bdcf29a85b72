// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RouteRepoFactory provides access to route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// TransporterRepoFactory provides access to transporter repository within a transaction.
	TransporterRepoFactory interface {
		TransporterRepository() ports.TransporterRepository
	}

	// HistoryRepoFactory provides access to the status history log within a transaction.
	HistoryRepoFactory interface {
		OrderStatusHistoryRepository() ports.OrderStatusHistoryRepository
	}

	// OrderUoW manages transactions that write orders and their history only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TransporterUoW manages transactions that touch transporter capacity only.
	TransporterUoW interface {
		TxManager
		TransporterRepoFactory
	}

	// TransporterUoWFactory creates new transporter unit of work instances.
	TransporterUoWFactory interface {
		Create() TransporterUoW
	}

	// UoW manages transactions across orders, routes, transporters and the
	// status history. Used by the assignment flow and both route engines.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   routeRepo := uow.RouteRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
		TransporterRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
