package repository

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// StockTransactionRepository define el puerto de persistencia para las
// entradas del libro de stock.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	GetByID(id string) (*entity.StockTransaction, error)
	Update(tx *entity.StockTransaction) error
	// Delete elimina la fila; solo el flujo interno de anulación lo usa
	// (el endpoint DELETE se rechaza siempre en el borde HTTP).
	Delete(id string) error
	// List devuelve transacciones ordenadas por timestamp descendente.
	List(limit, offset int) ([]*entity.StockTransaction, error)
	ListByBatch(batchID string, limit, offset int) ([]*entity.StockTransaction, error)
}
