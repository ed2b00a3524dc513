package checkout

import (
	"context"

	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// TxRunner ejecuta el checkout dentro de una transacción de base de datos.
// Los repositorios entregados al callback están ligados a esa transacción:
// si el callback devuelve error se revierte todo.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
