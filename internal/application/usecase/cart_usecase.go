package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// CartUseCase gestiona el carrito activo del usuario. Un usuario tiene a lo
// sumo un carrito; agregar un producto ya presente incrementa su cantidad.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase crea el caso de uso del carrito.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem agrega un producto al carrito del usuario, creando el carrito si
// no existe. Si el producto ya está en el carrito se suma la cantidad.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, req dto.CartItemRequest) (*dto.StatusResponse, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("la cantidad debe ser positiva: %w", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", req.ProductID, domain.ErrNotFound)
	}

	cart, err := uc.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &entity.Cart{
			ID:        uuid.NewString(),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		if err := uc.cartRepo.Create(cart); err != nil {
			return nil, err
		}
	}

	item, err := uc.cartRepo.GetItem(cart.ID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if item != nil {
		if err := uc.cartRepo.UpdateItemQuantity(item.ID, item.Quantity+req.Quantity); err != nil {
			return nil, err
		}
	} else {
		if err := uc.cartRepo.CreateItem(&entity.CartItem{
			ID:        uuid.NewString(),
			CartID:    cart.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}); err != nil {
			return nil, err
		}
	}

	return &dto.StatusResponse{Status: "success", Message: "Item added to cart"}, nil
}

// View devuelve el carrito del usuario. Sin carrito activo devuelve un
// carrito vacío, no un error.
func (uc *CartUseCase) View(ctx context.Context, userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &dto.CartResponse{Items: []dto.CartItemResponse{}}, nil
	}

	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, dto.CartItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.CartResponse{CartID: cart.ID, Items: items}, nil
}

// UpdateItem fija la cantidad de un producto del carrito. Cantidad cero o
// negativa elimina el item.
func (uc *CartUseCase) UpdateItem(ctx context.Context, userID string, req dto.CartItemRequest) (*dto.StatusResponse, error) {
	cart, err := uc.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("el usuario no tiene carrito activo: %w", domain.ErrNotFound)
	}

	item, err := uc.cartRepo.GetItem(cart.ID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("el producto no está en el carrito: %w", domain.ErrNotFound)
	}

	if req.Quantity <= 0 {
		if err := uc.cartRepo.DeleteItem(item.ID); err != nil {
			return nil, err
		}
		return &dto.StatusResponse{Status: "success", Message: "Item removed from cart"}, nil
	}
	if err := uc.cartRepo.UpdateItemQuantity(item.ID, req.Quantity); err != nil {
		return nil, err
	}
	return &dto.StatusResponse{Status: "success", Message: "Cart updated"}, nil
}

// RemoveItem quita un producto del carrito.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*dto.StatusResponse, error) {
	cart, err := uc.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("el usuario no tiene carrito activo: %w", domain.ErrNotFound)
	}

	item, err := uc.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("el producto no está en el carrito: %w", domain.ErrNotFound)
	}
	if err := uc.cartRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}
	return &dto.StatusResponse{Status: "success", Message: "Item removed from cart"}, nil
}
