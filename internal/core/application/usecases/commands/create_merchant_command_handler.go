package commands

import (
	"context"
	"errors"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/merchant"
	"trackgate/internal/pkg/errs"
)

// CreateMerchantCommandHandler handles merchant registration.
// Name uniqueness is enforced race-safely: a friendly pre-check catches the
// common case, and the store's unique constraint catches concurrent
// duplicates; both surface as the same conflict error.
type CreateMerchantCommandHandler struct {
	uowFactory MerchantUoWFactory
}

// NewCreateMerchantCommandHandler creates a handler for merchant
// registration operations.
func NewCreateMerchantCommandHandler(uowFactory MerchantUoWFactory) CreateMerchantCommandHandler {
	return CreateMerchantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the merchant registration command and returns the
// created merchant. A duplicate name yields *errs.ObjectAlreadyExistsError.
func (h CreateMerchantCommandHandler) Handle(ctx context.Context, cmd CreateMerchantCommand) (*merchant.Merchant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	merchantRepo := uow.MerchantRepository()

	_, err := merchantRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("name", cmd.Name())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newMerchant, err := merchant.NewMerchant(kernel.NewUUID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	// A concurrent writer may still win between the pre-check and the
	// insert; the constraint violation from Add carries the same
	// already-exists classification and propagates unchanged.
	if err = merchantRepo.Add(ctx, newMerchant); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newMerchant, nil
}
