package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

var _ repository.StockBatchRepository = (*StockBatchRepo)(nil)

// StockBatchRepo implementación de StockBatchRepository sobre PostgreSQL
// (usable con pool o tx).
type StockBatchRepo struct {
	q Querier
}

// NewStockBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewStockBatchRepository(q Querier) *StockBatchRepo {
	return &StockBatchRepo{q: q}
}

// Create inserta un lote nuevo con su saldo inicial.
func (r *StockBatchRepo) Create(batch *entity.StockBatch) error {
	query := `
		INSERT INTO stock_batches
			(id, product_id, batch_number, manufacture_date, expiry_date, retail_price, current_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.BatchNumber, batch.ManufactureDate,
		batch.ExpiryDate, batch.RetailPrice, batch.CurrentQuantity,
		batch.CreatedAt, batch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create stock batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por id, o nil si no existe.
func (r *StockBatchRepo) GetByID(id string) (*entity.StockBatch, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE) para que
// dos mutaciones concurrentes del libro no se intercalen.
func (r *StockBatchRepo) GetForUpdate(id string) (*entity.StockBatch, error) {
	return r.get(id, true)
}

func (r *StockBatchRepo) get(id string, forUpdate bool) (*entity.StockBatch, error) {
	query := `
		SELECT id, product_id, batch_number, manufacture_date, expiry_date, retail_price, current_quantity, created_at, updated_at
		FROM stock_batches WHERE id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	var b entity.StockBatch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ProductID, &b.BatchNumber, &b.ManufactureDate, &b.ExpiryDate,
		&b.RetailPrice, &b.CurrentQuantity, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock batch: %w", err)
	}
	return &b, nil
}

// UpdateQuantity escribe el nuevo saldo corriente del lote.
func (r *StockBatchRepo) UpdateQuantity(id string, quantity int64) error {
	query := `
		UPDATE stock_batches SET current_quantity = $2, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock batch quantity: %w", err)
	}
	return nil
}

// List devuelve lotes paginados, más recientes primero.
func (r *StockBatchRepo) List(limit, offset int) ([]*entity.StockBatch, error) {
	query := `
		SELECT id, product_id, batch_number, manufacture_date, expiry_date, retail_price, current_quantity, created_at, updated_at
		FROM stock_batches
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock batches: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockBatch
	for rows.Next() {
		var b entity.StockBatch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.BatchNumber, &b.ManufactureDate,
			&b.ExpiryDate, &b.RetailPrice, &b.CurrentQuantity, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ExistsByProduct indica si algún lote referencia al producto.
func (r *StockBatchRepo) ExistsByProduct(productID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM stock_batches WHERE product_id = $1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists batch by product: %w", err)
	}
	return exists, nil
}
