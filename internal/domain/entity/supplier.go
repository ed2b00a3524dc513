package entity

import "time"

// Niveles de importancia y estados de un proveedor.
const (
	SupplierImportanceNormal   = "Normal"
	SupplierImportanceHigh     = "High"
	SupplierImportanceCritical = "Critical"

	SupplierStatusActive   = "Active"
	SupplierStatusInactive = "Inactive"
)

// Supplier representa un proveedor del supermercado, con los indicadores de
// desempeño que alimentan el tablero de analítica.
type Supplier struct {
	ID            string
	SupplierCode  string
	Name          string
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Category      string // lista separada por comas (ej: "Lácteos, Bebidas")
	PaymentTerms  string
	Importance    string
	Status        string

	// Desempeño
	DeliveryDay    int
	OnTimeRate     float64
	TotalOrders    int
	LateDeliveries int
	Score          int

	// Puntaje de confiabilidad calculado por el modelo (0 mientras no exista).
	ReliabilityScore float64

	CreatedAt time.Time
	UpdatedAt time.Time
	UpdatedBy string
}
