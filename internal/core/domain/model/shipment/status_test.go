package shipment_test

import (
	"testing"

	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []shipment.Status {
	return []shipment.Status{
		shipment.Created,
		shipment.InTransit,
		shipment.Delivered,
		shipment.Failed,
		shipment.Cancelled,
	}
}

func TestStatus_CanTransitionTo_Table(t *testing.T) {
	allowed := map[shipment.Status]map[shipment.Status]bool{
		shipment.Created:   {shipment.InTransit: true, shipment.Cancelled: true},
		shipment.InTransit: {shipment.Delivered: true, shipment.Failed: true, shipment.Cancelled: true},
		shipment.Delivered: {},
		shipment.Failed:    {},
		shipment.Cancelled: {},
	}

	// Exhaustive check over every (current, target) pair.
	for _, current := range allStatuses() {
		for _, target := range allStatuses() {
			expected := current == target || allowed[current][target]
			assert.Equal(t, expected, current.CanTransitionTo(target),
				"%s -> %s", current, target)
		}
	}
}

func TestStatus_CanTransitionTo_SelfIsAlwaysAllowed(t *testing.T) {
	for _, s := range allStatuses() {
		assert.True(t, s.CanTransitionTo(s), "%s -> %s", s, s)
	}
}

func TestStatus_TerminalStatesAcceptNothingButThemselves(t *testing.T) {
	terminals := []shipment.Status{shipment.Delivered, shipment.Failed, shipment.Cancelled}

	for _, terminal := range terminals {
		assert.True(t, terminal.IsTerminal(), "%s", terminal)
		for _, target := range allStatuses() {
			if target == terminal {
				continue
			}
			assert.False(t, terminal.CanTransitionTo(target), "%s -> %s", terminal, target)
		}
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allowed transition returns target", func(t *testing.T) {
		next, err := shipment.Created.TransitionTo(shipment.InTransit)
		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, next)
	})

	t.Run("self transition is a no-op success", func(t *testing.T) {
		next, err := shipment.Delivered.TransitionTo(shipment.Delivered)
		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, next)
	})

	t.Run("disallowed transition fails with typed error", func(t *testing.T) {
		_, err := shipment.Created.TransitionTo(shipment.Delivered)
		require.Error(t, err)

		var invalidErr *shipment.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, shipment.Created, invalidErr.From)
		assert.Equal(t, shipment.Delivered, invalidErr.To)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid target is rejected", func(t *testing.T) {
		_, err := shipment.Created.TransitionTo(shipment.Unknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "created", shipment.Created.String())
	assert.Equal(t, "in_transit", shipment.InTransit.String())
	assert.Equal(t, "delivered", shipment.Delivered.String())
	assert.Equal(t, "failed", shipment.Failed.String())
	assert.Equal(t, "cancelled", shipment.Cancelled.String())
	assert.Equal(t, "unknown", shipment.Unknown.String())
	assert.Equal(t, "unknown", shipment.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trip for all valid statuses", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := shipment.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown input is rejected", func(t *testing.T) {
		_, err := shipment.StatusFromString("unknown")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = shipment.StatusFromString("IN_TRANSIT")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		require.NoError(t, s.Validate())
	}
	assert.Error(t, shipment.Unknown.Validate())
	assert.Error(t, shipment.Status(42).Validate())
}
