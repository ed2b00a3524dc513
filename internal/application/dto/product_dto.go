package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToCategoryResponse mapea la entidad al DTO.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	CategoryID   string          `json:"categoryId"`
	ProductName  string          `json:"productName"`
	SKU          string          `json:"sku"`
	Unit         string          `json:"unit"`
	ImageURL     string          `json:"imageUrl"`
	SupplierName string          `json:"supplierName"`
	Description  string          `json:"description"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
}

// UpdateProductRequest body para PUT /api/products/{id}; nil = sin cambio.
type UpdateProductRequest struct {
	CategoryID   *string          `json:"categoryId"`
	ProductName  *string          `json:"productName"`
	Unit         *string          `json:"unit"`
	ImageURL     *string          `json:"imageUrl"`
	SupplierName *string          `json:"supplierName"`
	Description  *string          `json:"description"`
	DefaultPrice *decimal.Decimal `json:"defaultPrice"`
}

// ProductResponse un producto del catálogo.
type ProductResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"categoryId"`
	ProductName  string          `json:"productName"`
	SKU          string          `json:"sku"`
	Unit         string          `json:"unit"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	SupplierName string          `json:"supplierName"`
	Description  string          `json:"description,omitempty"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
}

// ToProductResponse mapea la entidad al DTO.
func ToProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		ProductName:  p.Name,
		SKU:          p.SKU,
		Unit:         p.Unit,
		ImageURL:     p.ImageURL,
		SupplierName: p.SupplierName,
		Description:  p.Description,
		DefaultPrice: p.DefaultPrice,
	}
}
