// Package ledger contiene la aritmética pura del libro de stock: la única
// regla del sistema para convertir (tipo, cantidad) en un delta de saldo.
// Apply, Amend y Void del caso de uso derivan todo de estas dos funciones;
// la reversa siempre invierte el par tipo/cantidad REGISTRADO, nunca el
// mostrado, lo que hace correcta la enmienda cuando cambian ambos a la vez.
package ledger

import (
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

// ValidType indica si txType es uno de los cuatro tipos reconocidos.
func ValidType(txType string) bool {
	switch txType {
	case entity.TransactionTypeStockIn, entity.TransactionTypeSale,
		entity.TransactionTypeAdjustment, entity.TransactionTypeReturn:
		return true
	}
	return false
}

// Effect devuelve el delta de saldo con signo que produce (txType, quantity):
// stock_in y return suman, sale resta, adjustment suma la cantidad con su
// signo (puede ser negativa para mermas).
func Effect(txType string, quantity int64) (int64, error) {
	switch txType {
	case entity.TransactionTypeStockIn, entity.TransactionTypeReturn:
		return quantity, nil
	case entity.TransactionTypeSale:
		return -quantity, nil
	case entity.TransactionTypeAdjustment:
		return quantity, nil
	}
	return 0, domain.ErrInvalidInput
}

// Reversal devuelve el delta que deshace exactamente el efecto registrado de
// (txType, quantity).
func Reversal(txType string, quantity int64) (int64, error) {
	effect, err := Effect(txType, quantity)
	if err != nil {
		return 0, err
	}
	return -effect, nil
}
