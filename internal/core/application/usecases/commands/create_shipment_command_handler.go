package commands

import (
	"context"
	"errors"
	"fmt"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/pkg/errs"
)

// CreateShipmentResult carries the resolved shipment together with the flag
// distinguishing "newly created" from "already existed". Callers must
// preserve this distinction (201 vs 200 at the HTTP boundary), not collapse
// it.
type CreateShipmentResult struct {
	Shipment *shipment.Shipment
	Created  bool
}

// CreateShipmentCommandHandler implements idempotent shipment creation.
//
// The store's unique constraint on (merchant_id, external_reference) is the
// sole concurrency-correctness mechanism: the lookup before the insert is
// an optimization, and a constraint violation from a concurrent winner is
// resolved by re-reading the row rather than erroring.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation
// operations.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the (merchant, external reference) pair to exactly one
// shipment:
//  1. The merchant must exist, otherwise *errs.ObjectNotFoundError.
//  2. An existing shipment for the pair is returned with Created=false.
//  3. Otherwise a new shipment is inserted with status "created". If the
//     insert loses a race (uniqueness violation), the winner row is
//     re-read and returned with Created=false; if the re-read finds
//     nothing, the original fault propagates.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (CreateShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	merchantRepo := uow.MerchantRepository()
	shipmentRepo := uow.ShipmentRepository()

	if _, err := merchantRepo.Get(ctx, cmd.MerchantID()); err != nil {
		return CreateShipmentResult{}, err
	}

	existing, err := shipmentRepo.GetByMerchantAndReference(ctx, cmd.MerchantID(), cmd.ExternalReference())
	if err == nil {
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return CreateShipmentResult{}, commitErr
		}
		return CreateShipmentResult{Shipment: existing, Created: false}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateShipmentResult{}, err
	}

	newShipment, err := shipment.NewShipment(kernel.NewUUID(), cmd.MerchantID(), cmd.Name(), cmd.ExternalReference())
	if err != nil {
		return CreateShipmentResult{}, err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// A concurrent writer won the race. The failed insert aborted
			// the transaction, so the winner must be re-read outside it.
			_ = uow.Rollback(ctx)
			return h.resolveRaceWinner(ctx, cmd, err)
		}
		return CreateShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	return CreateShipmentResult{Shipment: newShipment, Created: true}, nil
}

// resolveRaceWinner re-reads the shipment persisted by the concurrent
// winner. Exactly one recovery attempt is made; if the row is still absent
// the original insert fault propagates unrecovered.
func (h CreateShipmentCommandHandler) resolveRaceWinner(ctx context.Context, cmd CreateShipmentCommand, insertErr error) (CreateShipmentResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	winner, err := uow.ShipmentRepository().GetByMerchantAndReference(ctx, cmd.MerchantID(), cmd.ExternalReference())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreateShipmentResult{}, fmt.Errorf("shipment insert failed and winner row is absent: %w", insertErr)
		}
		return CreateShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	return CreateShipmentResult{Shipment: winner, Created: false}, nil
}
