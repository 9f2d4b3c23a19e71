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
	"github.com/stretchr/testify/require"
)

func TestNewProcessCarrierEventCommand_ValidInput(t *testing.T) {
	merchantID := kernel.NewUUID()
	target := shipment.Delivered
	occurredAt := time.Date(2026, time.March, 15, 17, 45, 0, 0, time.UTC)
	cmd, err := commands.NewProcessCarrierEventCommand(
		merchantID, "SHP-1001", trackingevent.EventTypeDelivered, &target, nil, occurredAt,
	)
	require.NoError(t, err)
	assert.Equal(t, merchantID, cmd.MerchantID())
	assert.Equal(t, "SHP-1001", cmd.ExternalReference())
	assert.Equal(t, trackingevent.EventTypeDelivered, cmd.EventType())
	require.NotNil(t, cmd.TargetStatus())
	assert.Equal(t, shipment.Delivered, *cmd.TargetStatus())
	assert.Equal(t, occurredAt, cmd.OccurredAt())
}

func TestNewProcessCarrierEventCommand_NoTargetStatus(t *testing.T) {
	cmd, err := commands.NewProcessCarrierEventCommand(
		kernel.NewUUID(), "SHP-1001", trackingevent.EventTypeOutForDelivery, nil, nil, time.Time{},
	)
	require.NoError(t, err)
	assert.Nil(t, cmd.TargetStatus())
}

func TestNewProcessCarrierEventCommand_EmptyExternalReference(t *testing.T) {
	_, err := commands.NewProcessCarrierEventCommand(
		kernel.NewUUID(), "", trackingevent.EventTypePickedUp, nil, nil, time.Time{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewProcessCarrierEventCommand_UnknownTargetStatus(t *testing.T) {
	target := shipment.Unknown
	_, err := commands.NewProcessCarrierEventCommand(
		kernel.NewUUID(), "SHP-1001", trackingevent.EventTypePickedUp, &target, nil, time.Time{},
	)
	require.Error(t, err)
}
