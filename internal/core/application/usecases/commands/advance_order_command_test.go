package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
)

func TestNewAdvanceOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAdvanceOrderCommand(101, 3, order.Started)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(101), cmd.OrderID())
	assert.Equal(t, int64(3), cmd.CleanerID())
	assert.Equal(t, order.Started, cmd.Target())
}

func TestNewAdvanceOrderCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(101, 3, order.Status(0))
	require.Error(t, err)
}

func TestNewAdvanceOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(-1, 3, order.Going)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAdvanceOrderCommand(101, 0, order.Going)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAdvanceOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AdvanceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderCommandIsNotConstructed)
}
