// Package commands contains the write side of the shipment lifecycle
// engine. Every mutating flow (merchant registration, idempotent shipment
// creation, status updates, event appends, carrier-webhook processing)
// passes through a command handler, and every multi-write handler wraps its
// work in a single unit of work so partial application cannot be observed.
package commands

import (
	"context"

	"trackgate/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MerchantRepoFactory provides access to the merchant repository within
	// a transaction.
	MerchantRepoFactory interface {
		MerchantRepository() ports.MerchantRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within
	// a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ShipmentEventRepoFactory provides access to the event-log repository
	// within a transaction.
	ShipmentEventRepoFactory interface {
		ShipmentEventRepository() ports.ShipmentEventRepository
	}

	// MerchantUoW manages transactions for merchant-only operations.
	MerchantUoW interface {
		TxManager
		MerchantRepoFactory
	}

	// MerchantUoWFactory creates merchant unit of work instances.
	MerchantUoWFactory interface {
		Create() MerchantUoW
	}

	// ShipmentUoW manages transactions for shipment operations that also
	// need merchant existence checks (idempotent creation).
	ShipmentUoW interface {
		TxManager
		MerchantRepoFactory
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// TrackingUoW manages transactions spanning a shipment and its event
	// log. Used by event appends and carrier-webhook processing, where the
	// status update and the event append must persist as one unit.
	TrackingUoW interface {
		TxManager
		ShipmentRepoFactory
		ShipmentEventRepoFactory
	}

	// TrackingUoWFactory creates tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}
)
