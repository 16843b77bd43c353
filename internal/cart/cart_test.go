package cart_test

import (
	"testing"

	"github.com/catalodge/roomboard/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jollof() cart.LineItem {
	return cart.LineItem{ID: "m1", Name: "Jollof Rice", Price: 3500, Unit: "plate"}
}

func TestAddStartsAtOneAndIncrements(t *testing.T) {
	var c cart.Cart

	c.Add(jollof())
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Items[0].Qty)

	// Adding the same item again bumps the quantity instead of duplicating
	// the line.
	c.Add(jollof())
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Items[0].Qty)
}

func TestIncrementAndDecrement(t *testing.T) {
	var c cart.Cart
	c.Add(jollof())

	assert.True(t, c.Increment("m1"))
	assert.Equal(t, 2, c.Items[0].Qty)

	assert.True(t, c.Decrement("m1"))
	assert.Equal(t, 1, c.Items[0].Qty)

	// Dropping below one removes the line entirely.
	assert.True(t, c.Decrement("m1"))
	assert.Equal(t, 0, c.Len())

	assert.False(t, c.Increment("m1"))
	assert.False(t, c.Decrement("m1"))
}

func TestRemoveAndClear(t *testing.T) {
	var c cart.Cart
	c.Add(jollof())
	c.Add(cart.LineItem{ID: "m2", Name: "Chapman", Price: 1500})
	c.Increment("m1")

	assert.True(t, c.Remove("m1"))
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Remove("m1"))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Zero(t, c.Subtotal())
}

func TestSubtotal(t *testing.T) {
	var c cart.Cart
	c.Add(jollof())
	c.Add(jollof())
	c.Add(cart.LineItem{ID: "m2", Name: "Chapman", Price: 1500})

	// 2 x 3500 + 1 x 1500
	assert.Equal(t, int64(8500), c.Subtotal())
}
