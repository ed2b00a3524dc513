package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyCart         = errors.New("el carrito está vacío")
)

// InsufficientStockError indica que una venta excede el saldo del lote.
// Lleva la cantidad restante para que el caller la muestre al usuario.
// errors.Is(err, ErrInsufficientStock) devuelve true para este error.
type InsufficientStockError struct {
	Remaining int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para procesar la venta: solo quedan %d unidades", e.Remaining)
}

// Is permite detectar el error con el centinela ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
