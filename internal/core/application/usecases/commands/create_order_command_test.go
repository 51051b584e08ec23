package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("Alice Johnson", decimal.RequireFromString("123.45"))
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", cmd.CustomerName())
	assert.True(t, cmd.TotalAmount().Equal(decimal.RequireFromString("123.45")))
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", decimal.Zero)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyCustomerName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func TestNewCreateOrderCommand_ZeroAmount(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Alice Johnson", decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTotalAmountIsInvalid)
}

func TestNewCreateOrderCommand_NegativeAmount(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Alice Johnson", decimal.NewFromInt(-5))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTotalAmountIsInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.Error(t, cmd.Validate())
}
