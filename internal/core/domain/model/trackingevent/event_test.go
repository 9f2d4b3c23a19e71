package trackingevent_test

import (
	"testing"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/trackingevent"
	"trackgate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingEvent(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		id := kernel.NewUUID()
		shipmentID := kernel.NewUUID()
		occurredAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		reason := "left at front door"

		ev, err := trackingevent.NewTrackingEvent(
			id, shipmentID,
			trackingevent.EventTypeDelivered,
			trackingevent.SourceCarrier,
			&reason,
			occurredAt,
		)
		require.NoError(t, err)

		assert.True(t, ev.ID().IsEqual(id))
		assert.True(t, ev.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, trackingevent.EventTypeDelivered, ev.Type())
		assert.Equal(t, trackingevent.SourceCarrier, ev.Source())
		require.NotNil(t, ev.Reason())
		assert.Equal(t, "left at front door", *ev.Reason())
		assert.Equal(t, occurredAt, ev.OccurredAt())
		require.NoError(t, ev.Validate())
	})

	t.Run("zero occurred_at defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		ev, err := trackingevent.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(),
			trackingevent.EventTypePickedUp,
			trackingevent.SourceSystem,
			nil,
			time.Time{},
		)
		after := time.Now().UTC()
		require.NoError(t, err)

		assert.False(t, ev.OccurredAt().Before(before))
		assert.False(t, ev.OccurredAt().After(after))
	})

	t.Run("invalid event type is rejected", func(t *testing.T) {
		_, err := trackingevent.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(),
			trackingevent.EventTypeUnknown,
			trackingevent.SourceSystem,
			nil,
			time.Now(),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid source is rejected", func(t *testing.T) {
		_, err := trackingevent.NewTrackingEvent(
			kernel.NewUUID(), kernel.NewUUID(),
			trackingevent.EventTypeDelivered,
			trackingevent.SourceUnknown,
			nil,
			time.Now(),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreTrackingEvent_RequiresOccurredAt(t *testing.T) {
	_, err := trackingevent.RestoreTrackingEvent(
		kernel.NewUUID(), kernel.NewUUID(),
		trackingevent.EventTypeDelivered,
		trackingevent.SourceCarrier,
		nil,
		time.Time{},
	)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestEventType_Strings(t *testing.T) {
	// Canonical lowercase literals only; no uppercase variants exist.
	expected := map[trackingevent.EventType]string{
		trackingevent.EventTypeLabelCreated:   "label_created",
		trackingevent.EventTypePickedUp:       "picked_up",
		trackingevent.EventTypeOutForDelivery: "out_for_delivery",
		trackingevent.EventTypeDelivered:      "delivered",
		trackingevent.EventTypeDeliveryFailed: "delivery_failed",
	}

	for et, str := range expected {
		assert.Equal(t, str, et.String())

		parsed, err := trackingevent.EventTypeFromString(str)
		require.NoError(t, err)
		assert.Equal(t, et, parsed)
	}

	_, err := trackingevent.EventTypeFromString("DELIVERY_FAILED")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSource_Strings(t *testing.T) {
	expected := map[trackingevent.Source]string{
		trackingevent.SourceCarrier: "carrier",
		trackingevent.SourceSystem:  "system",
		trackingevent.SourceManual:  "manual",
	}

	for src, str := range expected {
		assert.Equal(t, str, src.String())

		parsed, err := trackingevent.SourceFromString(str)
		require.NoError(t, err)
		assert.Equal(t, src, parsed)
	}

	_, err := trackingevent.SourceFromString("robot")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTrackingEvent_Validate_ZeroValue(t *testing.T) {
	var ev trackingevent.TrackingEvent
	assert.ErrorIs(t, ev.Validate(), trackingevent.ErrTrackingEventIsNotConstructed)
}
