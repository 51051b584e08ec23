package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(7, "Bob Smith", "Shipped", decimal.RequireFromString("99.90"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, "Bob Smith", cmd.CustomerName())
	assert.Equal(t, "Shipped", cmd.Status())
	assert.True(t, cmd.TotalAmount().Equal(decimal.RequireFromString("99.90")))
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(0, "Bob Smith", "Shipped", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}

func TestNewUpdateOrderCommand_EmptyCustomerName(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(7, "", "Shipped", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func TestNewUpdateOrderCommand_EmptyStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(7, "Bob Smith", "", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStatusIsRequired)
}

func TestNewUpdateOrderCommand_NonPositiveAmount(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(7, "Bob Smith", "Shipped", decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTotalAmountIsInvalid)
}

func TestNewUpdateOrderCommand_AllInvalid_ReportsEveryFailure(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(-1, "", "", decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrStatusIsRequired)
	assert.ErrorIs(t, err, commands.ErrTotalAmountIsInvalid)
}
