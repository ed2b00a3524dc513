package repository

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// SupplierFilter filtros y orden del listado de proveedores.
// Sort acepta: name-asc, name-desc, score-asc, score-desc.
type SupplierFilter struct {
	Search   string
	Category string
	Status   string
	Sort     string
}

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	List(filter SupplierFilter) ([]*entity.Supplier, error)
}
