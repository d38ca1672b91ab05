package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/pkg/errs"
)

func TestNewSetCleanerAvailabilityCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSetCleanerAvailabilityCommand(3, false)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(3), cmd.CleanerID())
	assert.False(t, cmd.Available())
}

func TestNewSetCleanerAvailabilityCommand_InvalidCleanerID(t *testing.T) {
	_, err := commands.NewSetCleanerAvailabilityCommand(0, true)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSetCleanerAvailabilityCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SetCleanerAvailabilityCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSetCleanerAvailabilityCommandIsNotConstructed)
}
