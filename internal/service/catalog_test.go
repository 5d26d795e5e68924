package service

import (
	"context"
	"testing"

	"shop-cli/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductWithUnknownCategory(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	product, warnings, err := catalog.CreateProduct(ctx, "Widget", 9.99, 5, []string{"Tools"})
	require.NoError(t, err)
	assert.Empty(t, product.CategoryIDs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Tools")

	// product exists despite the unresolved tag
	got, err := catalog.FindProduct(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
}

func TestCreateProductResolvesCategories(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	tools, err := catalog.CreateCategory(ctx, "Tools")
	require.NoError(t, err)

	product, warnings, err := catalog.CreateProduct(ctx, "Hammer", 4.50, 3, []string{"Tools", " Garden "})
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	require.Len(t, product.CategoryIDs, 1)
	assert.Equal(t, tools.ID, product.CategoryIDs[0])
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	_, _, err := catalog.CreateProduct(ctx, "Widget", -1, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = catalog.CreateProduct(ctx, "Widget", 1, -5, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = catalog.CreateProduct(ctx, "  ", 1, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProductAppliesAllFieldsAtOnce(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	_, _, err := catalog.CreateProduct(ctx, "Widget", 9.99, 5, nil)
	require.NoError(t, err)

	newName := "Gadget"
	newPrice := 12.50
	newQuantity := 7
	updated, err := catalog.UpdateProduct(ctx, "Widget", ProductUpdate{
		Name:     &newName,
		Price:    &newPrice,
		Quantity: &newQuantity,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, 12.50, updated.Price)
	assert.Equal(t, 7, updated.Quantity)

	// the rename did not strand the other field updates
	got, err := catalog.FindProduct(ctx, "Gadget")
	require.NoError(t, err)
	assert.Equal(t, 12.50, got.Price)
	assert.Equal(t, 7, got.Quantity)

	_, err = catalog.FindProduct(ctx, "Widget")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateProductPartialFields(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	_, _, err := catalog.CreateProduct(ctx, "Widget", 9.99, 5, nil)
	require.NoError(t, err)

	newQuantity := 2
	updated, err := catalog.UpdateProduct(ctx, "Widget", ProductUpdate{Quantity: &newQuantity})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 9.99, updated.Price)
	assert.Equal(t, 2, updated.Quantity)
}

func TestFindProductFirstMatch(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	first, _, err := catalog.CreateProduct(ctx, "Widget", 1.00, 1, nil)
	require.NoError(t, err)
	_, _, err = catalog.CreateProduct(ctx, "Widget", 2.00, 2, nil)
	require.NoError(t, err)

	got, err := catalog.FindProduct(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestDeleteProduct(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	_, _, err := catalog.CreateProduct(ctx, "Widget", 9.99, 5, nil)
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, "Widget"))

	_, err = catalog.FindProduct(ctx, "Widget")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = catalog.DeleteProduct(ctx, "Widget")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSweepDepletedRemovesExactlyDepleted(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	_, _, err := catalog.CreateProduct(ctx, "Empty", 1.00, 0, nil)
	require.NoError(t, err)
	_, _, err = catalog.CreateProduct(ctx, "Stocked", 2.00, 3, nil)
	require.NoError(t, err)

	removed, err := catalog.SweepDepleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Stocked", products[0].Name)
}

func TestCategoryListing(t *testing.T) {
	m := newMemStore()
	catalog := NewCatalogService(m)
	ctx := context.Background()

	_, err := catalog.CreateCategory(ctx, "Tools")
	require.NoError(t, err)
	_, err = catalog.CreateCategory(ctx, "Garden")
	require.NoError(t, err)

	categories, err := catalog.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	_, err = catalog.CreateCategory(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
