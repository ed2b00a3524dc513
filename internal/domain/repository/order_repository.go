package repository

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	// AppendStatusHistory registra un cambio de estado (insumo del forecasting).
	AppendStatusHistory(history *entity.OrderStatusHistory) error
	UpdateStatus(orderID, status string) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
}
