package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock físico vive en los
// lotes (StockBatch); aquí solo datos de referencia y precio por defecto.
type Product struct {
	ID           string
	CategoryID   string
	Name         string
	SKU          string
	Unit         string // ej: "kg", "unidad", "paquete"
	ImageURL     string
	SupplierName string
	Description  string
	DefaultPrice decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
