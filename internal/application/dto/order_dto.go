package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

// CheckoutResponse resultado de POST /api/orders/checkout.
type CheckoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// UpdateOrderStatusRequest body para PUT /api/orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse un item de una orden con el precio congelado.
type OrderItemResponse struct {
	ProductID       string          `json:"product_id"`
	Quantity        int64           `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

// OrderResponse una orden.
type OrderResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	CurrentStatus  string              `json:"current_status"`
	DeliveryMethod string              `json:"delivery_method"`
	CreatedAt      time.Time           `json:"created_at"`
	Items          []OrderItemResponse `json:"items"`
}

// ToOrderResponse mapea la entidad al DTO.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		})
	}
	return &OrderResponse{
		ID:             o.ID,
		UserID:         o.UserID,
		TotalAmount:    o.TotalAmount,
		CurrentStatus:  o.CurrentStatus,
		DeliveryMethod: o.DeliveryMethod,
		CreatedAt:      o.CreatedAt,
		Items:          items,
	}
}
