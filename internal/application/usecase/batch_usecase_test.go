package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

func newBatchFixture(t *testing.T) (*usecase.StockBatchUseCase, *memBatchRepo, *memTxRepo) {
	t.Helper()
	productRepo := newMemProductRepo()
	batchRepo := newMemBatchRepo()
	txRepo := newMemTxRepo()
	require.NoError(t, productRepo.Create(&entity.Product{ID: "product-1", Name: "Leche entera", SKU: "SKU-001"}))
	runner := &ledgerTxRunner{txRepo: txRepo, batchRepo: batchRepo, productRepo: productRepo}
	return usecase.NewStockBatchUseCase(runner, batchRepo), batchRepo, txRepo
}

// TestBatchCreate_AutoLog: crear un lote con cantidad inicial deja el saldo en
// esa cantidad y exactamente UNA entrada stock_in automática en el libro. El
// auto-log documenta el ingreso, no lo duplica.
func TestBatchCreate_AutoLog(t *testing.T) {
	uc, batchRepo, txRepo := newBatchFixture(t)

	resp, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		ProductID:       "product-1",
		BatchNumber:     "LOTE-2026-001",
		ExpiryDate:      time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		RetailPrice:     decimal.NewFromFloat(3.50),
		CurrentQuantity: 40,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 40, resp.CurrentQuantity)

	batch := batchRepo.batches[resp.ID]
	require.NotNil(t, batch)
	assert.EqualValues(t, 40, batch.CurrentQuantity, "el saldo se escribe una sola vez, no 80")

	require.Len(t, txRepo.txs, 1)
	for _, tx := range txRepo.txs {
		assert.Equal(t, entity.TransactionTypeStockIn, tx.Type)
		assert.EqualValues(t, 40, tx.Quantity)
		assert.Equal(t, entity.RecordedBySystem, tx.RecordedBy)
		assert.Equal(t, resp.ID, tx.BatchID)
	}
}

// TestBatchCreate_SinCantidadInicial: un lote en cero no genera entrada.
func TestBatchCreate_SinCantidadInicial(t *testing.T) {
	uc, _, txRepo := newBatchFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		ProductID:   "product-1",
		BatchNumber: "LOTE-2026-002",
		ExpiryDate:  time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, txRepo.txs, "sin cantidad inicial no hay auto-log")
}

func TestBatchCreate_ProductoInexistente(t *testing.T) {
	uc, batchRepo, _ := newBatchFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		ProductID:   "no-existe",
		BatchNumber: "LOTE-X",
		ExpiryDate:  time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, batchRepo.batches)
}

func TestBatchCreate_CantidadNegativa(t *testing.T) {
	uc, _, _ := newBatchFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		ProductID:       "product-1",
		BatchNumber:     "LOTE-X",
		ExpiryDate:      time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		CurrentQuantity: -5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
