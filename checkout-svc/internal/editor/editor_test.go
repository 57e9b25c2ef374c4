package editor_test

import (
	"testing"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/editor"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor(qty int) *editor.ItemEditor {
	return editor.New(domain.MenuLineItem{
		ID:        "a",
		Name:      "Burger",
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString("8.50"),
	})
}

func TestItemEditor_StepFloorsAtOne(t *testing.T) {
	e := newEditor(2)

	assert.True(t, e.Step(-1))
	assert.Equal(t, 1, e.Draft)
	assert.False(t, e.Step(-1))
	assert.Equal(t, 1, e.Draft)
	assert.True(t, e.Step(3))
	assert.Equal(t, 4, e.Draft)
}

func TestItemEditor_Commit(t *testing.T) {
	e := newEditor(2)

	qty, changed := e.Commit()
	assert.Equal(t, 2, qty)
	assert.False(t, changed)

	e.Step(1)
	qty, changed = e.Commit()
	assert.Equal(t, 3, qty)
	assert.True(t, changed)
	assert.Equal(t, "25.50", e.DraftTotal().StringFixed(2))
}

func TestItemEditor_Customizations(t *testing.T) {
	e := newEditor(1)

	require.NoError(t, e.Toggle("no_onions"))
	require.NoError(t, e.Toggle("extra_sauce"))
	require.NoError(t, e.Toggle("extra_sauce"))
	assert.Equal(t, []string{"no_onions"}, e.Selected())

	assert.ErrorIs(t, e.Toggle("pineapple"), editor.ErrUnknownCustomization)

	e.SetInstructions("sauce on the side")
	assert.Equal(t, "sauce on the side", e.Instructions)
	assert.Equal(t, "8.50", e.DraftTotal().StringFixed(2))
}

func TestRemovalFlow(t *testing.T) {
	var flow editor.RemovalFlow
	assert.Equal(t, editor.RemovalIdle, flow.State())

	_, err := flow.Confirm()
	assert.ErrorIs(t, err, editor.ErrNoPendingRemoval)
	assert.ErrorIs(t, flow.Cancel(), editor.ErrNoPendingRemoval)

	require.NoError(t, flow.Request("a"))
	require.NoError(t, flow.Request("a"))
	assert.ErrorIs(t, flow.Request("b"), editor.ErrRemovalPending)
	assert.Equal(t, editor.RemovalPendingConfirm, flow.State())

	require.NoError(t, flow.Cancel())
	assert.Equal(t, editor.RemovalIdle, flow.State())

	require.NoError(t, flow.Request("b"))
	itemID, err := flow.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "b", itemID)
	_, pending := flow.Pending()
	assert.False(t, pending)
}
