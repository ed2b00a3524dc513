package ports

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// ReportGenerator produce el directorio de proveedores en PDF.
type ReportGenerator interface {
	SupplierDirectory(suppliers []*entity.Supplier) ([]byte, error)
}
