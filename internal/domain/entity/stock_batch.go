package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch representa un lote físico de un producto (entrega de proveedor).
// CurrentQuantity es el saldo corriente del lote: invariante, siempre igual a
// la suma de los efectos con signo de sus transacciones. Se muta únicamente a
// través del libro de stock (application/ledger), nunca directo.
type StockBatch struct {
	ID              string
	ProductID       string
	BatchNumber     string
	ManufactureDate *time.Time // nil si el proveedor no la reporta
	ExpiryDate      time.Time
	RetailPrice     decimal.Decimal
	CurrentQuantity int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
