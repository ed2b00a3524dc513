package ledger

import (
	"context"

	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la escritura dual atómica del libro
// de stock: entrada del libro y saldo del lote se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.StockTransactionRepository,
		batchRepo repository.StockBatchRepository,
		productRepo repository.ProductRepository,
	) error) error
}
