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

const cartUser = "user-1"

func newCartFixture(t *testing.T) (*usecase.CartUseCase, *memCartRepo) {
	t.Helper()
	cartRepo := newMemCartRepo()
	productRepo := newMemProductRepo()
	require.NoError(t, productRepo.Create(&entity.Product{ID: "product-1", Name: "Pan", SKU: "SKU-1"}))
	require.NoError(t, productRepo.Create(&entity.Product{ID: "product-2", Name: "Café", SKU: "SKU-2"}))
	return usecase.NewCartUseCase(cartRepo, productRepo), cartRepo
}

// TestCartAdd_IncrementaExistente: agregar un producto ya presente suma la
// cantidad en vez de duplicar la fila.
func TestCartAdd_IncrementaExistente(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-1", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-1", Quantity: 3})
	require.NoError(t, err)

	cart, err := uc.View(context.Background(), cartUser)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 5, cart.Items[0].Quantity)
}

func TestCartAdd_ProductoInexistente(t *testing.T) {
	uc, _ := newCartFixture(t)
	_, err := uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartAdd_CantidadInvalida(t *testing.T) {
	uc, _ := newCartFixture(t)
	_, err := uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCartView_SinCarrito: ver el carrito sin haber agregado nada devuelve un
// carrito vacío, no un error.
func TestCartView_SinCarrito(t *testing.T) {
	uc, _ := newCartFixture(t)
	cart, err := uc.View(context.Background(), cartUser)
	require.NoError(t, err)
	assert.Empty(t, cart.CartID)
	assert.Empty(t, cart.Items)
}

// TestCartUpdate_CantidadCeroElimina: fijar cantidad cero quita el item.
func TestCartUpdate_CantidadCeroElimina(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-1", Quantity: 2})
	require.NoError(t, err)

	_, err = uc.UpdateItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-1", Quantity: 0})
	require.NoError(t, err)

	cart, err := uc.View(context.Background(), cartUser)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartRemove(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-1", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-2", Quantity: 1})
	require.NoError(t, err)

	_, err = uc.RemoveItem(context.Background(), cartUser, "product-1")
	require.NoError(t, err)

	cart, err := uc.View(context.Background(), cartUser)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "product-2", cart.Items[0].ProductID)
}

func TestCartRemove_ItemInexistente(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddItem(context.Background(), cartUser, dto.CartItemRequest{ProductID: "product-1", Quantity: 1})
	require.NoError(t, err)

	_, err = uc.RemoveItem(context.Background(), cartUser, "product-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
