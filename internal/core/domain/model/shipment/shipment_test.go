package shipment_test

import (
	"testing"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	t.Run("valid shipment starts in created status", func(t *testing.T) {
		id := kernel.NewUUID()
		merchantID := kernel.NewUUID()

		s, err := shipment.NewShipment(id, merchantID, "Order 1", "ext-1")
		require.NoError(t, err)

		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.MerchantID().IsEqual(merchantID))
		assert.Equal(t, "Order 1", s.Name())
		assert.Equal(t, "ext-1", s.ExternalReference())
		assert.Equal(t, shipment.Created, s.Status())
		require.NoError(t, s.Validate())
	})

	t.Run("zero merchant id is rejected", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), kernel.UUID{}, "Order 1", "ext-1")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty external reference is rejected", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "Order 1", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "", "ext-1")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores with stored status", func(t *testing.T) {
		s, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), "Order 1", "ext-1", shipment.InTransit)
		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s.Status())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), "Order 1", "ext-1", shipment.Unknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Validate_ZeroValue(t *testing.T) {
	var s shipment.Shipment
	assert.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)

	var nilShipment *shipment.Shipment
	assert.ErrorIs(t, nilShipment.Validate(), shipment.ErrShipmentIsNotConstructed)
}

func TestShipment_TransitionTo(t *testing.T) {
	newShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "Order 1", "ext-1")
		require.NoError(t, err)
		return s
	}

	t.Run("full lifecycle", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.TransitionTo(shipment.InTransit))
		assert.Equal(t, shipment.InTransit, s.Status())

		require.NoError(t, s.TransitionTo(shipment.Delivered))
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("created cannot jump to delivered", func(t *testing.T) {
		s := newShipment(t)

		err := s.TransitionTo(shipment.Delivered)
		var invalidErr *shipment.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, shipment.Created, s.Status(), "status must be unchanged on rejection")
	})

	t.Run("terminal state rejects further transitions", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.TransitionTo(shipment.InTransit))
		require.NoError(t, s.TransitionTo(shipment.Delivered))

		err := s.TransitionTo(shipment.InTransit)
		require.Error(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("self transition keeps status", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.TransitionTo(shipment.Created))
		assert.Equal(t, shipment.Created, s.Status())
	})
}
