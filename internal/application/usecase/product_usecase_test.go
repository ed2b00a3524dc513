package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

func newProductFixture(t *testing.T) (*usecase.ProductUseCase, *memProductRepo, *memBatchRepo) {
	t.Helper()
	productRepo := newMemProductRepo()
	categoryRepo := newMemCategoryRepo()
	batchRepo := newMemBatchRepo()
	require.NoError(t, categoryRepo.Create(&entity.Category{ID: "cat-1", Name: "Lácteos"}))
	return usecase.NewProductUseCase(productRepo, categoryRepo, batchRepo), productRepo, batchRepo
}

func TestProductCreate(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID:  "cat-1",
		ProductName: "Yogur natural",
		SKU:         "SKU-100",
		Unit:        "unidad",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Yogur natural", resp.ProductName)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: "cat-1", ProductName: "Yogur", SKU: "SKU-100",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: "cat-1", ProductName: "Otro yogur", SKU: "SKU-100",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: "no-existe", ProductName: "Yogur", SKU: "SKU-101",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestProductDelete_ConLotes: un producto referenciado por lotes de stock no
// se puede eliminar; la historia del inventario depende de él.
func TestProductDelete_ConLotes(t *testing.T) {
	uc, productRepo, batchRepo := newProductFixture(t)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: "cat-1", ProductName: "Yogur", SKU: "SKU-100",
	})
	require.NoError(t, err)
	require.NoError(t, batchRepo.Create(&entity.StockBatch{ID: "batch-1", ProductID: resp.ID}))

	err = uc.Delete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, productRepo.products, resp.ID, "el producto debe seguir existiendo")
}

func TestProductDelete_SinLotes(t *testing.T) {
	uc, productRepo, _ := newProductFixture(t)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: "cat-1", ProductName: "Yogur", SKU: "SKU-100",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), resp.ID))
	assert.NotContains(t, productRepo.products, resp.ID)
}

func TestProductUpdate_Parcial(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: "cat-1", ProductName: "Yogur", SKU: "SKU-100", Unit: "unidad",
	})
	require.NoError(t, err)

	newName := "Yogur griego"
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{ProductName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Yogur griego", updated.ProductName)
	assert.Equal(t, "unidad", updated.Unit, "los campos no enviados se conservan")
	assert.Equal(t, "SKU-100", updated.SKU, "el SKU nunca cambia")
}
