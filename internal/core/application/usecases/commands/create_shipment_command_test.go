package commands_test

import (
	"testing"

	"trackgate/internal/core/application/usecases/commands"
	"trackgate/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	merchantID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(merchantID, "Winter boots", "SHP-1001")
	require.NoError(t, err)
	assert.Equal(t, merchantID, cmd.MerchantID())
	assert.Equal(t, "Winter boots", cmd.Name())
	assert.Equal(t, "SHP-1001", cmd.ExternalReference())
}

func TestNewCreateShipmentCommand_InvalidMerchantID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateShipmentCommand(invalidID, "Winter boots", "SHP-1001")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateShipmentCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), "", "SHP-1001")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShipmentNameIsRequired)
}

func TestNewCreateShipmentCommand_EmptyExternalReference(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), "Winter boots", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrExternalReferenceIsRequired)
}
