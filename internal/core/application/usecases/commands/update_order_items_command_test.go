package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderItemsCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := []commands.ItemInput{
		mustItemInput(t, "deluxe", "xlarge", intPtr(2)),
		mustItemInput(t, "sprite", "medium", nil),
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(id, items)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Len(t, cmd.Items(), 2)
}

func TestNewUpdateOrderItemsCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	items := []commands.ItemInput{mustItemInput(t, "cheese", "small", nil)}

	_, err := commands.NewUpdateOrderItemsCommand(invalidID, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderItemsCommand_EmptyItems(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewUpdateOrderItemsCommand(id, []commands.ItemInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
