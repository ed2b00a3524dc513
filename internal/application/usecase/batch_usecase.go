package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/ledger"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// StockBatchUseCase registra lotes de stock. Al crear un lote con cantidad
// inicial se auto-registra una entrada stock_in en el libro para que la
// historia del lote quede completa desde el primer día.
type StockBatchUseCase struct {
	txRunner  ledger.TxRunner
	batchRepo repository.StockBatchRepository
}

// NewStockBatchUseCase crea el caso de uso de lotes.
func NewStockBatchUseCase(txRunner ledger.TxRunner, batchRepo repository.StockBatchRepository) *StockBatchUseCase {
	return &StockBatchUseCase{txRunner: txRunner, batchRepo: batchRepo}
}

// Create registra el lote y, si trae cantidad inicial, la entrada stock_in
// automática. El saldo del lote se escribe UNA sola vez: la entrada del libro
// documenta el ingreso, no lo vuelve a sumar.
func (uc *StockBatchUseCase) Create(ctx context.Context, req dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if req.ProductID == "" || req.BatchNumber == "" {
		return nil, fmt.Errorf("productId y batchNumber son obligatorios: %w", domain.ErrInvalidInput)
	}
	if req.CurrentQuantity < 0 {
		return nil, fmt.Errorf("la cantidad inicial no puede ser negativa: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	batch := &entity.StockBatch{
		ID:              uuid.NewString(),
		ProductID:       req.ProductID,
		BatchNumber:     req.BatchNumber,
		ManufactureDate: req.ManufactureDate,
		ExpiryDate:      req.ExpiryDate,
		RetailPrice:     req.RetailPrice,
		CurrentQuantity: req.CurrentQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		batchRepo repository.StockBatchRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(req.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %s: %w", req.ProductID, domain.ErrNotFound)
		}
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		if req.CurrentQuantity > 0 {
			return txRepo.Create(&entity.StockTransaction{
				ID:         uuid.NewString(),
				BatchID:    batch.ID,
				Type:       entity.TransactionTypeStockIn,
				Quantity:   req.CurrentQuantity,
				RecordedBy: entity.RecordedBySystem,
				Timestamp:  now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.ToBatchResponse(batch), nil
}

// Get devuelve un lote por id.
func (uc *StockBatchUseCase) Get(ctx context.Context, id string) (*dto.BatchResponse, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
	}
	return dto.ToBatchResponse(batch), nil
}

// List devuelve los lotes paginados.
func (uc *StockBatchUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.BatchListResponse, error) {
	page.DefaultPage()
	batches, err := uc.batchRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.ToBatchResponse(b))
	}
	return &dto.BatchListResponse{
		Batches: out,
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
