package entity

import "time"

// Cart representa la sesión de compra activa de un usuario.
// Un usuario tiene a lo sumo un carrito activo (user_id único).
type Cart struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []CartItem
}

// CartItem es un producto dentro del carrito.
type CartItem struct {
	ID        string
	CartID    string
	ProductID string
	Quantity  int64
}
