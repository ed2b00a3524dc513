package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusPacked    = "Packed"
	OrderStatusOutForDel = "Out for Delivery"
	OrderStatusDelivered = "Delivered"
	OrderStatusAbort     = "Abort"
)

// DeliveryMethodPickup método de entrega por defecto del checkout.
const DeliveryMethodPickup = "Store Pickup"

// Order es el registro inmutable que resulta del checkout de un carrito.
type Order struct {
	ID             string
	UserID         string
	TotalAmount    decimal.Decimal
	CurrentStatus  string
	DeliveryMethod string
	CreatedAt      time.Time
	Items          []OrderItem
}

// OrderItem congela producto, cantidad y precio al momento de la compra.
type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       string
	Quantity        int64
	PriceAtPurchase decimal.Decimal
}

// OrderStatusHistory registra cada cambio de estado (insumo del forecasting).
type OrderStatusHistory struct {
	ID        string
	OrderID   string
	Status    string
	ChangedAt time.Time
}

// ValidOrderStatus indica si s es un estado de orden reconocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusPacked,
		OrderStatusOutForDel, OrderStatusDelivered, OrderStatusAbort:
		return true
	}
	return false
}
