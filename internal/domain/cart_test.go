package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sofa() Product {
	return Product{ID: "sofa-1", Name: "Monroe Sofa", Price: 1299, InStock: true, StockCount: 15}
}

func lamp() Product {
	return Product{ID: "lamp-1", Name: "Arc Lamp", Price: 149, InStock: true, StockCount: 3}
}

// ============================================================================
// Cart.Total Tests
// ============================================================================

func TestTotal_SingleItem(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{Product: sofa(), Quantity: 2},
		},
	}
	assert.Equal(t, 2598.0, c.Total())
}

func TestTotal_MultipleItems(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{Product: sofa(), Quantity: 2},
			{Product: lamp(), Quantity: 3},
		},
	}
	// 2598 + 447 = 3045
	assert.Equal(t, 3045.0, c.Total())
}

func TestTotal_EmptyCart(t *testing.T) {
	c := &Cart{Items: []CartItem{}}
	assert.Equal(t, 0.0, c.Total())
}

func TestTotal_NilItems(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, 0.0, c.Total())
}

// ============================================================================
// Cart.ItemCount Tests
// ============================================================================

func TestItemCount_MultipleItems(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{Product: sofa(), Quantity: 2},
			{Product: lamp(), Quantity: 3},
		},
	}
	assert.Equal(t, 5, c.ItemCount())
}

func TestItemCount_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, 0, c.ItemCount())
}

// ============================================================================
// Cart.AddItem Tests
// ============================================================================

func TestAddItem_NewLine(t *testing.T) {
	c := &Cart{}

	changed := c.AddItem(sofa(), 2, "Gray")

	assert.True(t, changed)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "Gray", c.Items[0].SelectedColor)
}

func TestAddItem_SameProductMerges(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "Gray")

	changed := c.AddItem(sofa(), 3, "Gray")

	assert.True(t, changed)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddItem_DifferentColorStillMerges(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 1, "Gray")

	c.AddItem(sofa(), 2, "Navy")

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	// The first selection wins; color is display metadata, not identity.
	assert.Equal(t, "Gray", c.Items[0].SelectedColor)
}

func TestAddItem_ClampsToStockCount(t *testing.T) {
	c := &Cart{}

	c.AddItem(lamp(), 10, "")

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddItem_MergeClampsToStockCount(t *testing.T) {
	c := &Cart{}
	c.AddItem(lamp(), 2, "")

	c.AddItem(lamp(), 5, "")

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddItem_ZeroStockCountLeavesQuantityUnclamped(t *testing.T) {
	p := Product{ID: "rug-1", Price: 99, StockCount: 0}
	c := &Cart{}

	c.AddItem(p, 4, "")

	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
}

func TestAddItem_NonPositiveQuantityIsNoop(t *testing.T) {
	c := &Cart{}

	assert.False(t, c.AddItem(sofa(), 0, ""))
	assert.False(t, c.AddItem(sofa(), -3, ""))
	assert.Empty(t, c.Items)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 1, "")
	c.AddItem(lamp(), 1, "")
	c.AddItem(sofa(), 1, "")

	require.Len(t, c.Items, 2)
	assert.Equal(t, "sofa-1", c.Items[0].Product.ID)
	assert.Equal(t, "lamp-1", c.Items[1].Product.ID)
}

// ============================================================================
// Cart.UpdateQuantity Tests
// ============================================================================

func TestUpdateQuantity_ReplacesQuantity(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "")

	changed := c.UpdateQuantity("sofa-1", 7)

	assert.True(t, changed)
	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestUpdateQuantity_ClampsToStockCount(t *testing.T) {
	c := &Cart{}
	c.AddItem(lamp(), 1, "")

	c.UpdateQuantity("lamp-1", 99)

	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "")
	c.AddItem(lamp(), 1, "")

	changed := c.UpdateQuantity("sofa-1", 0)

	assert.True(t, changed)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "lamp-1", c.Items[0].Product.ID)
}

func TestUpdateQuantity_NegativeRemovesItem(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "")

	c.UpdateQuantity("sofa-1", -1)

	assert.Empty(t, c.Items)
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "")

	changed := c.UpdateQuantity("ghost-9", 5)

	assert.False(t, changed)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

// ============================================================================
// Cart.RemoveItem Tests
// ============================================================================

func TestRemoveItem_RemovesMatchingLine(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "")
	c.AddItem(lamp(), 1, "")

	removed := c.RemoveItem("sofa-1")

	assert.True(t, removed)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "lamp-1", c.Items[0].Product.ID)
}

func TestRemoveItem_AbsentProductIsIdempotent(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "")

	assert.False(t, c.RemoveItem("ghost-9"))
	assert.False(t, c.RemoveItem("ghost-9"))
	assert.Len(t, c.Items, 1)
}

// ============================================================================
// Cart.Clear Tests
// ============================================================================

func TestClear_EmptiesCart(t *testing.T) {
	c := &Cart{}
	c.AddItem(sofa(), 2, "")
	c.AddItem(lamp(), 1, "")

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.ItemCount())
}
