package repository

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// StockBatchRepository define el puerto de persistencia para StockBatch.
// Usado dentro de transacciones para garantizar consistencia del saldo.
type StockBatchRepository interface {
	Create(batch *entity.StockBatch) error
	GetByID(id string) (*entity.StockBatch, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE) para que dos
	// mutaciones concurrentes sobre el mismo lote no se intercalen.
	GetForUpdate(id string) (*entity.StockBatch, error)
	// UpdateQuantity escribe el nuevo saldo corriente del lote.
	UpdateQuantity(id string, quantity int64) error
	List(limit, offset int) ([]*entity.StockBatch, error)
	// ExistsByProduct indica si algún lote referencia al producto
	// (restricción referencial al eliminar productos).
	ExistsByProduct(productID string) (bool, error)
}
