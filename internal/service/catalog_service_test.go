package service

import (
	"testing"

	"go-shop-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (*fakeProductRepo, CatalogService) {
	products := newFakeProductRepo()
	return products, NewCatalogService(products, nil, nil)
}

func strptr(s string) *string { return &s }

func TestCreateProductValidation(t *testing.T) {
	_, svc := newCatalogFixture()

	tests := []struct {
		name    string
		product model.Product
		field   string
	}{
		{"missing name", model.Product{SellingPrice: 10}, "name"},
		{"negative price", model.Product{Name: "Tea", SellingPrice: -1}, "selling_price"},
		{"negative cost", model.Product{Name: "Tea", CostPrice: -5}, "cost_price"},
		{"negative stock", model.Product{Name: "Tea", StockQty: -2}, "stock_qty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateProduct(&tt.product)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	products, svc := newCatalogFixture()
	products.add(model.Product{Name: "Tea", SKU: strptr("TEA-01"), IsActive: true})

	err := svc.CreateProduct(&model.Product{Name: "Other Tea", SKU: strptr("TEA-01")})
	assert.ErrorIs(t, err, ErrSKUAlreadyExists)
}

func TestCreateProductActivatesAndStores(t *testing.T) {
	products, svc := newCatalogFixture()

	p := model.Product{Name: "Pad Krapow", SellingPrice: 55, CostPrice: 20, StockQty: 10}
	require.NoError(t, svc.CreateProduct(&p))

	assert.True(t, p.IsActive)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, 10, products.stock(p.ID))
}

func TestUpdateProduct(t *testing.T) {
	products, svc := newCatalogFixture()
	existing := products.add(model.Product{Name: "Tea", SellingPrice: 25, StockQty: 3, IsActive: true})

	updated, err := svc.UpdateProduct(existing.ID, &model.Product{
		Name:         "Iced Tea",
		SellingPrice: 30,
		StockQty:     8,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Iced Tea", updated.Name)
	assert.Equal(t, 30.0, updated.SellingPrice)
	assert.Equal(t, 8, products.stock(existing.ID))
}

func TestUpdateProductNotFound(t *testing.T) {
	_, svc := newCatalogFixture()

	_, err := svc.UpdateProduct(uuid.New(), &model.Product{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	products, svc := newCatalogFixture()
	p := products.add(model.Product{Name: "Tea", IsActive: true})

	require.NoError(t, svc.DeleteProduct(p.ID))

	listed, err := svc.ListProducts("")
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, svc.DeleteProduct(p.ID), ErrProductNotFound)
}

func TestListProductsSearch(t *testing.T) {
	products, svc := newCatalogFixture()
	products.add(model.Product{Name: "Iced Tea", SKU: strptr("TEA-01"), IsActive: true})
	products.add(model.Product{Name: "Fried Rice", SKU: strptr("RICE-01"), IsActive: true})
	products.add(model.Product{Name: "Retired", IsActive: false})

	all, err := svc.ListProducts("")
	require.NoError(t, err)
	assert.Len(t, all, 2) // inactive products never listed

	byName, err := svc.ListProducts("tea")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Iced Tea", byName[0].Name)

	bySKU, err := svc.ListProducts("rice-01")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, "Fried Rice", bySKU[0].Name)
}
