package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/pkg/errs"
)

func TestNewCreateCleanerCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateCleanerCommand(3, "Aigerim", "Almaty")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(3), cmd.UserID())
	assert.Equal(t, "Aigerim", cmd.Name())
	assert.Equal(t, "Almaty", cmd.City())
}

func TestNewCreateCleanerCommand_EmptyCityAllowed(t *testing.T) {
	cmd, err := commands.NewCreateCleanerCommand(3, "Aigerim", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.City())
}

func TestNewCreateCleanerCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCleanerCommand(3, "", "Almaty")
	require.ErrorIs(t, err, commands.ErrCleanerNameIsRequired)
}

func TestNewCreateCleanerCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewCreateCleanerCommand(0, "Aigerim", "Almaty")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateCleanerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCleanerCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCleanerCommandIsNotConstructed)
}
