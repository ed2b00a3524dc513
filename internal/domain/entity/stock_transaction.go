package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeStockIn    = "stock_in"   // entrada de mercancía
	TransactionTypeSale       = "sale"       // venta (nunca puede dejar el saldo negativo)
	TransactionTypeAdjustment = "adjustment" // ajuste con signo (merma, corrección)
	TransactionTypeReturn     = "return"     // devolución de cliente
)

// RecordedBySystem identifica las transacciones generadas automáticamente al
// crear un lote con cantidad inicial (ingreso de la entrega del proveedor).
const RecordedBySystem = "System Auto-Log (Delivery)"

// StockTransaction es una entrada del libro de stock. Inmutable por intención:
// se puede enmendar (reversa + reaplica) o anular internamente, pero el
// endpoint DELETE la rechaza siempre para preservar la pista de auditoría.
// Quantity se registra como magnitud positiva salvo en adjustment, donde el
// signo es parte del dato.
type StockTransaction struct {
	ID         string
	BatchID    string
	Type       string
	Quantity   int64
	RecordedBy string
	Timestamp  time.Time // asignado por el servidor en UTC al crear
}
