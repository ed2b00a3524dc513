package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

// Los nombres JSON del módulo de inventario son camelCase: es el contrato
// que el frontend ya consume.

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	BatchID         string `json:"batchId"`
	TransactionType string `json:"transactionType"`
	Quantity        int64  `json:"quantity"`
	RecordedBy      string `json:"recordedBy"`
}

// UpdateTransactionRequest body para PUT /api/transactions/{id}; nil = sin cambio.
type UpdateTransactionRequest struct {
	TransactionType *string `json:"transactionType"`
	Quantity        *int64  `json:"quantity"`
	RecordedBy      *string `json:"recordedBy"`
}

// TransactionResponse una entrada del libro de stock.
type TransactionResponse struct {
	ID              string    `json:"id"`
	BatchID         string    `json:"batchId"`
	TransactionType string    `json:"transactionType"`
	Quantity        int64     `json:"quantity"`
	RecordedBy      string    `json:"recordedBy"`
	Timestamp       time.Time `json:"timestamp"`
}

// ToTransactionResponse mapea la entidad al DTO.
func ToTransactionResponse(tx *entity.StockTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              tx.ID,
		BatchID:         tx.BatchID,
		TransactionType: tx.Type,
		Quantity:        tx.Quantity,
		RecordedBy:      tx.RecordedBy,
		Timestamp:       tx.Timestamp,
	}
}

// CreateBatchRequest body para POST /api/batches. CurrentQuantity es la
// cantidad inicial del lote (openingQuantity).
type CreateBatchRequest struct {
	ProductID       string          `json:"productId"`
	BatchNumber     string          `json:"batchNumber"`
	ManufactureDate *time.Time      `json:"manufactureDate"`
	ExpiryDate      time.Time       `json:"expiryDate"`
	RetailPrice     decimal.Decimal `json:"retailPrice"`
	CurrentQuantity int64           `json:"currentQuantity"`
}

// BatchResponse un lote de stock.
type BatchResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	BatchNumber     string          `json:"batchNumber"`
	ManufactureDate *time.Time      `json:"manufactureDate,omitempty"`
	ExpiryDate      time.Time       `json:"expiryDate"`
	RetailPrice     decimal.Decimal `json:"retailPrice"`
	CurrentQuantity int64           `json:"currentQuantity"`
}

// ToBatchResponse mapea la entidad al DTO.
func ToBatchResponse(b *entity.StockBatch) *BatchResponse {
	return &BatchResponse{
		ID:              b.ID,
		ProductID:       b.ProductID,
		BatchNumber:     b.BatchNumber,
		ManufactureDate: b.ManufactureDate,
		ExpiryDate:      b.ExpiryDate,
		RetailPrice:     b.RetailPrice,
		CurrentQuantity: b.CurrentQuantity,
	}
}

// BatchListResponse listado paginado de lotes.
type BatchListResponse struct {
	Batches []*BatchResponse `json:"batches"`
	Page    PageResponse     `json:"page"`
}
