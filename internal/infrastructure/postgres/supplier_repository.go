package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, supplier_code, name, company_name, contact_person, email, phone, address,
		category, payment_terms, importance_level, status, delivery_day, on_time_rate,
		total_orders, late_deliveries, score, reliability_score, created_at, updated_at, updated_by`

// Create inserta un proveedor nuevo.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers
			(id, supplier_code, name, company_name, contact_person, email, phone, address,
			 category, payment_terms, importance_level, status, delivery_day, on_time_rate,
			 total_orders, late_deliveries, score, reliability_score, created_at, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SupplierCode, s.Name, s.CompanyName, s.ContactPerson, s.Email,
		s.Phone, s.Address, s.Category, s.PaymentTerms, s.Importance, s.Status,
		s.DeliveryDay, s.OnTimeRate, s.TotalOrders, s.LateDeliveries, s.Score,
		s.ReliabilityScore, s.CreatedAt, s.UpdatedAt, s.UpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("proveedor %s: %w", s.SupplierCode, domain.ErrDuplicate)
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por id, o nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SupplierCode, &s.Name, &s.CompanyName, &s.ContactPerson, &s.Email,
		&s.Phone, &s.Address, &s.Category, &s.PaymentTerms, &s.Importance, &s.Status,
		&s.DeliveryDay, &s.OnTimeRate, &s.TotalOrders, &s.LateDeliveries, &s.Score,
		&s.ReliabilityScore, &s.CreatedAt, &s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update reescribe los datos del proveedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET supplier_code = $2, name = $3, company_name = $4, contact_person = $5,
		    email = $6, phone = $7, address = $8, category = $9, payment_terms = $10,
		    importance_level = $11, status = $12, delivery_day = $13, on_time_rate = $14,
		    total_orders = $15, late_deliveries = $16, score = $17, reliability_score = $18,
		    updated_at = $19, updated_by = $20
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SupplierCode, s.Name, s.CompanyName, s.ContactPerson, s.Email,
		s.Phone, s.Address, s.Category, s.PaymentTerms, s.Importance, s.Status,
		s.DeliveryDay, s.OnTimeRate, s.TotalOrders, s.LateDeliveries, s.Score,
		s.ReliabilityScore, s.UpdatedAt, s.UpdatedBy)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(id string) error {
	query := `DELETE FROM suppliers WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// List devuelve proveedores con filtros opcionales y orden. El search aplica
// sobre nombre, razón social y código; el filtro de categoría usa ILIKE porque
// la columna guarda una lista separada por comas.
func (r *SupplierRepo) List(filter repository.SupplierFilter) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE 1=1`
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR company_name ILIKE $%d OR supplier_code ILIKE $%d)", n, n, n)
	}
	if filter.Category != "" {
		args = append(args, "%"+filter.Category+"%")
		query += fmt.Sprintf(" AND category ILIKE $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	switch filter.Sort {
	case "name-desc":
		query += " ORDER BY name DESC"
	case "score-asc":
		query += " ORDER BY score ASC"
	case "score-desc":
		query += " ORDER BY score DESC"
	default: // name-asc
		query += " ORDER BY name ASC"
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.SupplierCode, &s.Name, &s.CompanyName, &s.ContactPerson, &s.Email,
			&s.Phone, &s.Address, &s.Category, &s.PaymentTerms, &s.Importance, &s.Status,
			&s.DeliveryDay, &s.OnTimeRate, &s.TotalOrders, &s.LateDeliveries, &s.Score,
			&s.ReliabilityScore, &s.CreatedAt, &s.UpdatedAt, &s.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
