package repository

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para carritos.
type CartRepository interface {
	// GetByUser devuelve el carrito del usuario con sus items, o nil si no existe.
	GetByUser(userID string) (*entity.Cart, error)
	Create(cart *entity.Cart) error
	GetItem(cartID, productID string) (*entity.CartItem, error)
	CreateItem(item *entity.CartItem) error
	UpdateItemQuantity(itemID string, quantity int64) error
	DeleteItem(itemID string) error
	// Delete elimina el carrito y sus items (checkout).
	Delete(cartID string) error
}
