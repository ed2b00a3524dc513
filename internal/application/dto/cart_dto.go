package dto

// CartItemRequest body para añadir o actualizar un item del carrito.
// Contrato snake_case heredado del frontend.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CartItemResponse un item dentro del carrito.
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CartResponse el carrito del usuario. CartID vacío = sin carrito activo.
type CartResponse struct {
	CartID string             `json:"cart_id"`
	Items  []CartItemResponse `json:"items"`
}
