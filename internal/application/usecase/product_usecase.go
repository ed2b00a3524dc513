package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// ProductUseCase gestiona el catálogo de productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	batchRepo    repository.StockBatchRepository
}

// NewProductUseCase crea el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, batchRepo repository.StockBatchRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo, batchRepo: batchRepo}
}

// Create registra un producto nuevo. El SKU es único en todo el catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.ProductName == "" || req.SKU == "" {
		return nil, fmt.Errorf("productName y sku son obligatorios: %w", domain.ErrInvalidInput)
	}

	category, err := uc.categoryRepo.GetByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %s: %w", req.CategoryID, domain.ErrNotFound)
	}

	existing, err := uc.productRepo.GetBySKU(req.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe un producto con SKU %s: %w", req.SKU, domain.ErrDuplicate)
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:           uuid.NewString(),
		CategoryID:   req.CategoryID,
		Name:         req.ProductName,
		SKU:          req.SKU,
		Unit:         req.Unit,
		ImageURL:     req.ImageURL,
		SupplierName: req.SupplierName,
		Description:  req.Description,
		DefaultPrice: req.DefaultPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return dto.ToProductResponse(product), nil
}

// List devuelve el catálogo paginado.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// Update aplica cambios parciales a un producto. El SKU no se puede cambiar.
func (uc *ProductUseCase) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}

	if req.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("categoría %s: %w", *req.CategoryID, domain.ErrNotFound)
		}
		product.CategoryID = *req.CategoryID
	}
	if req.ProductName != nil {
		product.Name = *req.ProductName
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.SupplierName != nil {
		product.SupplierName = *req.SupplierName
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.DefaultPrice != nil {
		product.DefaultPrice = *req.DefaultPrice
	}
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete elimina un producto. Un producto referenciado por lotes de stock no
// se puede eliminar: la historia del inventario lo necesita.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}

	referenced, err := uc.batchRepo.ExistsByProduct(id)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("el producto tiene lotes de stock asociados: %w", domain.ErrConflict)
	}
	return uc.productRepo.Delete(id)
}
