package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del libro de stock sobre PostgreSQL
// (usable con pool o tx).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create inserta una entrada en el libro.
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, batch_id, transaction_type, quantity, recorded_by, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.BatchID, tx.Type, tx.Quantity, tx.RecordedBy, tx.Timestamp)
	if err != nil {
		return fmt.Errorf("create stock transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por id, o nil si no existe.
func (r *StockTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	query := `
		SELECT id, batch_id, transaction_type, quantity, recorded_by, timestamp
		FROM stock_transactions WHERE id = $1`
	var t entity.StockTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.BatchID, &t.Type, &t.Quantity, &t.RecordedBy, &t.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return &t, nil
}

// Update reescribe tipo, cantidad y autor de una entrada (enmienda).
func (r *StockTransactionRepo) Update(tx *entity.StockTransaction) error {
	query := `
		UPDATE stock_transactions
		SET transaction_type = $2, quantity = $3, recorded_by = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, tx.ID, tx.Type, tx.Quantity, tx.RecordedBy)
	if err != nil {
		return fmt.Errorf("update stock transaction: %w", err)
	}
	return nil
}

// Delete elimina la fila (solo anulación interna; el borde HTTP nunca llega aquí).
func (r *StockTransactionRepo) Delete(id string) error {
	query := `DELETE FROM stock_transactions WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete stock transaction: %w", err)
	}
	return nil
}

// List devuelve entradas ordenadas por timestamp descendente.
func (r *StockTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, batch_id, transaction_type, quantity, recorded_by, timestamp
		FROM stock_transactions
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListByBatch devuelve las entradas de un lote, más recientes primero.
func (r *StockTransactionRepo) ListByBatch(batchID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, batch_id, transaction_type, quantity, recorded_by, timestamp
		FROM stock_transactions
		WHERE batch_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, batchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions by batch: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.BatchID, &t.Type, &t.Quantity, &t.RecordedBy, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
