package commands_test

import (
	"testing"
	"time"

	"trackgate/internal/core/application/usecases/commands"
	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/core/domain/model/trackingevent"
	"trackgate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewProcessCarrierEventCommandHandler_NilFactory(t *testing.T) {
	_, err := commands.NewProcessCarrierEventCommandHandler(nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestProcessCarrierEventCommandHandler_Handle_StatusAndEvent(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestShipment(t, shipment.InTransit)
	occurredAt := time.Date(2026, time.March, 15, 17, 45, 0, 0, time.UTC)
	target := shipment.Delivered
	cmd, err := commands.NewProcessCarrierEventCommand(
		aggregate.MerchantID(), aggregate.ExternalReference(),
		trackingevent.EventTypeDelivered, &target, nil, occurredAt,
	)
	require.NoError(t, err)

	shipmentRepo := new(MockEventShipmentRepository)
	eventRepo := new(MockEventLogRepository)
	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByMerchantAndReference", mock.Anything, aggregate.MerchantID(), aggregate.ExternalReference()).
			Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("ShipmentEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*trackingevent.TrackingEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewProcessCarrierEventCommandHandler(factory)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, result.Shipment.Status())
	assert.Equal(t, trackingevent.EventTypeDelivered, result.Event.Type())
	assert.Equal(t, trackingevent.SourceSystem, result.Event.Source())
	assert.Equal(t, occurredAt, result.Event.OccurredAt())
	shipmentRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessCarrierEventCommandHandler_Handle_InformationalEvent(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestShipment(t, shipment.InTransit)
	cmd, err := commands.NewProcessCarrierEventCommand(
		aggregate.MerchantID(), aggregate.ExternalReference(),
		trackingevent.EventTypeOutForDelivery, nil, nil, time.Time{},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockEventShipmentRepository)
	eventRepo := new(MockEventLogRepository)
	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByMerchantAndReference", mock.Anything, aggregate.MerchantID(), aggregate.ExternalReference()).
			Return(aggregate, nil).Once(),
		uow.On("ShipmentEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*trackingevent.TrackingEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewProcessCarrierEventCommandHandler(factory)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, result.Shipment.Status())
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProcessCarrierEventCommandHandler_Handle_InvalidTransitionPersistsNothing(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestShipment(t, shipment.Cancelled)
	target := shipment.Delivered
	cmd, err := commands.NewProcessCarrierEventCommand(
		aggregate.MerchantID(), aggregate.ExternalReference(),
		trackingevent.EventTypeDelivered, &target, nil, time.Time{},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockEventShipmentRepository)
	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByMerchantAndReference", mock.Anything, aggregate.MerchantID(), aggregate.ExternalReference()).
			Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewProcessCarrierEventCommandHandler(factory)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *shipment.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "ShipmentEventRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestProcessCarrierEventCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	cmd, err := commands.NewProcessCarrierEventCommand(
		merchantID, "SHP-UNKNOWN", trackingevent.EventTypePickedUp, nil, nil, time.Time{},
	)
	require.NoError(t, err)

	shipmentRepo := new(MockEventShipmentRepository)
	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByMerchantAndReference", mock.Anything, merchantID, "SHP-UNKNOWN").
			Return(nil, errs.NewObjectNotFoundError("externalReference", "SHP-UNKNOWN")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewProcessCarrierEventCommandHandler(factory)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
