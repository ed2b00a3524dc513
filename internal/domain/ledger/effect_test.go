package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/ledger"
)

// TestEffect_ReglasDeSigno verifica la regla de mutación de saldo para cada
// tipo: stock_in/return suman, sale resta, adjustment conserva el signo.
func TestEffect_ReglasDeSigno(t *testing.T) {
	cases := []struct {
		name     string
		txType   string
		quantity int64
		want     int64
	}{
		{"stock_in suma", entity.TransactionTypeStockIn, 10, 10},
		{"return suma", entity.TransactionTypeReturn, 4, 4},
		{"sale resta", entity.TransactionTypeSale, 7, -7},
		{"adjustment positivo suma", entity.TransactionTypeAdjustment, 3, 3},
		{"adjustment negativo resta", entity.TransactionTypeAdjustment, -5, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ledger.Effect(tc.txType, tc.quantity)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEffect_TipoDesconocido: un tipo no reconocido debe fallar con
// ErrInvalidInput, nunca aplicarse en silencio.
func TestEffect_TipoDesconocido(t *testing.T) {
	_, err := ledger.Effect("transfer", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.Reversal("", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestReversal_Simetria: para todo tipo y cantidad, efecto + reversa == 0.
// Es la propiedad que garantiza que Void restaura el saldo previo exacto.
func TestReversal_Simetria(t *testing.T) {
	types := []string{
		entity.TransactionTypeStockIn,
		entity.TransactionTypeSale,
		entity.TransactionTypeAdjustment,
		entity.TransactionTypeReturn,
	}
	quantities := []int64{0, 1, 7, 50, -12}

	for _, txType := range types {
		for _, qty := range quantities {
			effect, err := ledger.Effect(txType, qty)
			require.NoError(t, err)
			reversal, err := ledger.Reversal(txType, qty)
			require.NoError(t, err)
			assert.Zero(t, effect+reversal,
				"efecto y reversa deben anularse para %s/%d", txType, qty)
		}
	}
}

func TestValidType(t *testing.T) {
	assert.True(t, ledger.ValidType(entity.TransactionTypeStockIn))
	assert.True(t, ledger.ValidType(entity.TransactionTypeSale))
	assert.True(t, ledger.ValidType(entity.TransactionTypeAdjustment))
	assert.True(t, ledger.ValidType(entity.TransactionTypeReturn))
	assert.False(t, ledger.ValidType("purchase"))
	assert.False(t, ledger.ValidType(""))
}
