package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(7, testDetails(t), testItems(t))
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.CustomerID())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, "15 Abay Ave", cmd.Details().Address())
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, testDetails(t), testItems(t))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_UnconstructedDetails(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(7, order.Details{}, testItems(t))
	require.ErrorIs(t, err, order.ErrDetailsAreNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(7, testDetails(t), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
