// Package ledger implementa el libro de stock: el caso de uso que mantiene el
// saldo corriente de cada lote como un log de transacciones append-mostly.
//
// Invariante: para todo lote, CurrentQuantity en reposo es igual a la suma de
// los efectos con signo de sus transacciones vivas. Toda mutación (Apply,
// Amend, Void) corre como una transacción SQL con la fila del lote bloqueada
// (SELECT FOR UPDATE): el saldo se relee dentro de la transacción, nunca se
// cachea entre requests.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	domledger "github.com/ransara-lk/supermarket-api/internal/domain/ledger"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// StockLedgerUseCase aplica, enmienda y anula transacciones de stock de forma
// transaccional, con bloqueo de fila sobre el lote y Commit/Rollback.
type StockLedgerUseCase struct {
	txRunner TxRunner
	txRepo   repository.StockTransactionRepository // lecturas fuera de transacción (List)
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner, txRepo repository.StockTransactionRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner, txRepo: txRepo}
}

// ApplyInput entrada para registrar una transacción de stock.
type ApplyInput struct {
	BatchID    string
	Type       string
	Quantity   int64
	RecordedBy string
}

// AmendInput campos a enmendar en una transacción existente; nil = sin cambio.
type AmendInput struct {
	Type       *string
	Quantity   *int64
	RecordedBy *string
}

// Apply crea una transacción y muta el saldo del lote en la misma unidad
// atómica. Una venta que exceda el saldo falla con InsufficientStockError
// (lleva la cantidad restante) y no deja rastro.
func (uc *StockLedgerUseCase) Apply(ctx context.Context, input ApplyInput) (*entity.StockTransaction, error) {
	if err := validateQuantity(input.Type, input.Quantity); err != nil {
		return nil, err
	}
	if input.BatchID == "" || input.RecordedBy == "" {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockTransaction
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		batchRepo repository.StockBatchRepository,
		_ repository.ProductRepository,
	) error {
		// Bloquea la fila del lote para evitar lost updates entre requests
		batch, err := batchRepo.GetForUpdate(input.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}

		if input.Type == entity.TransactionTypeSale && batch.CurrentQuantity < input.Quantity {
			return &domain.InsufficientStockError{Remaining: batch.CurrentQuantity}
		}

		effect, err := domledger.Effect(input.Type, input.Quantity)
		if err != nil {
			return err
		}
		if err := batchRepo.UpdateQuantity(batch.ID, batch.CurrentQuantity+effect); err != nil {
			return err
		}

		created = &entity.StockTransaction{
			ID:         uuid.New().String(),
			BatchID:    batch.ID,
			Type:       input.Type,
			Quantity:   input.Quantity,
			RecordedBy: input.RecordedBy,
			Timestamp:  time.Now().UTC(),
		}
		return txRepo.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Amend enmienda una transacción: revierte el efecto ORIGINAL registrado,
// aplica el efecto del nuevo par tipo/cantidad y actualiza la fila, todo en
// una transacción. La guarda de no-negatividad de las ventas se aplica
// también aquí: si el nuevo par es una venta que excede el saldo tras la
// reversa, la operación falla con InsufficientStockError y el saldo queda
// intacto (ver DESIGN.md).
func (uc *StockLedgerUseCase) Amend(ctx context.Context, transactionID string, input AmendInput) (*entity.StockTransaction, error) {
	var amended *entity.StockTransaction
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		batchRepo repository.StockBatchRepository,
		_ repository.ProductRepository,
	) error {
		tx, err := txRepo.GetByID(transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		batch, err := batchRepo.GetForUpdate(tx.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}

		newType := tx.Type
		newQuantity := tx.Quantity
		if input.Type != nil {
			newType = *input.Type
		}
		if input.Quantity != nil {
			newQuantity = *input.Quantity
		}
		if err := validateQuantity(newType, newQuantity); err != nil {
			return err
		}

		// 1. Reversa del efecto original (siempre sobre el par registrado)
		reversal, err := domledger.Reversal(tx.Type, tx.Quantity)
		if err != nil {
			return err
		}
		balance := batch.CurrentQuantity + reversal

		// 2. Guarda de ventas sobre el saldo ya revertido
		if newType == entity.TransactionTypeSale && balance < newQuantity {
			return &domain.InsufficientStockError{Remaining: balance}
		}

		// 3. Efecto del nuevo par tipo/cantidad
		effect, err := domledger.Effect(newType, newQuantity)
		if err != nil {
			return err
		}
		if err := batchRepo.UpdateQuantity(batch.ID, balance+effect); err != nil {
			return err
		}

		tx.Type = newType
		tx.Quantity = newQuantity
		if input.RecordedBy != nil {
			tx.RecordedBy = *input.RecordedBy
		}
		if err := txRepo.Update(tx); err != nil {
			return err
		}
		amended = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return amended, nil
}

// Void revierte el efecto registrado de la transacción y elimina la fila.
// Existe solo para flujos correctivos internos (es la primera mitad de
// Amend); el endpoint DELETE del API lo rechaza siempre por auditoría.
func (uc *StockLedgerUseCase) Void(ctx context.Context, transactionID string) error {
	return uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		batchRepo repository.StockBatchRepository,
		_ repository.ProductRepository,
	) error {
		tx, err := txRepo.GetByID(transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		batch, err := batchRepo.GetForUpdate(tx.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		reversal, err := domledger.Reversal(tx.Type, tx.Quantity)
		if err != nil {
			return err
		}
		if err := batchRepo.UpdateQuantity(batch.ID, batch.CurrentQuantity+reversal); err != nil {
			return err
		}
		return txRepo.Delete(tx.ID)
	})
}

// Get devuelve una transacción por id.
func (uc *StockLedgerUseCase) Get(_ context.Context, id string) (*entity.StockTransaction, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// List devuelve transacciones ordenadas por timestamp descendente. Sin efectos.
func (uc *StockLedgerUseCase) List(_ context.Context, limit, offset int) ([]*entity.StockTransaction, error) {
	return uc.txRepo.List(limit, offset)
}

// validateQuantity: la cantidad se registra como magnitud positiva, salvo
// adjustment donde el signo es parte del dato (pero nunca cero).
func validateQuantity(txType string, quantity int64) error {
	if !domledger.ValidType(txType) {
		return domain.ErrInvalidInput
	}
	if txType == entity.TransactionTypeAdjustment {
		if quantity == 0 {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}
