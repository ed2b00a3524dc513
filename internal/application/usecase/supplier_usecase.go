package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/ports"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// Encabezado del CSV de proveedores; el orden es el contrato de import/export.
var supplierCSVHeader = []string{
	"supplierCode", "name", "companyName", "contactPerson", "email", "phone",
	"address", "category", "paymentTerms", "importanceLevel", "status",
	"delivery_day", "onTimeRate", "totalOrders", "lateDeliveries", "score",
}

// SupplierUseCase gestiona proveedores: CRUD, import/export y el tablero de
// analítica que alimenta el frontend.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	reports      ports.ReportGenerator
}

// NewSupplierUseCase crea el caso de uso de proveedores.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository, reports ports.ReportGenerator) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, reports: reports}
}

// Create registra un proveedor nuevo.
func (uc *SupplierUseCase) Create(ctx context.Context, req dto.SupplierRequest, updatedBy string) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("el nombre del proveedor es obligatorio: %w", domain.ErrInvalidInput)
	}
	supplier := supplierFromRequest(req)
	supplier.ID = uuid.NewString()
	supplier.CreatedAt = time.Now().UTC()
	supplier.UpdatedAt = supplier.CreatedAt
	supplier.UpdatedBy = updatedBy
	if supplier.Status == "" {
		supplier.Status = entity.SupplierStatusActive
	}
	if supplier.Importance == "" {
		supplier.Importance = entity.SupplierImportanceNormal
	}
	supplier.ReliabilityScore = reliability(supplier)

	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// Get devuelve un proveedor por id.
func (uc *SupplierUseCase) Get(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return dto.ToSupplierResponse(supplier), nil
}

// List devuelve los proveedores con filtros y orden.
func (uc *SupplierUseCase) List(ctx context.Context, filter repository.SupplierFilter) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return out, nil
}

// Update reemplaza los datos de un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, req dto.SupplierRequest, updatedBy string) (*dto.SupplierResponse, error) {
	existing, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}

	supplier := supplierFromRequest(req)
	supplier.ID = id
	supplier.CreatedAt = existing.CreatedAt
	supplier.UpdatedAt = time.Now().UTC()
	supplier.UpdatedBy = updatedBy
	supplier.ReliabilityScore = reliability(supplier)

	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return uc.supplierRepo.Delete(id)
}

// Analytics calcula el resumen del tablero: conteos, promedios y los
// gráficos de distribución por importancia y por categoría.
func (uc *SupplierUseCase) Analytics(ctx context.Context) (*dto.SupplierAnalyticsResponse, error) {
	suppliers, err := uc.supplierRepo.List(repository.SupplierFilter{})
	if err != nil {
		return nil, err
	}

	resp := &dto.SupplierAnalyticsResponse{
		Total:         len(suppliers),
		Chart:         []dto.ChartPoint{},
		CategoryChart: []dto.ChartPoint{},
		Top5:          []dto.RankedSupplier{},
		Bottom5:       []dto.RankedSupplier{},
	}
	if len(suppliers) == 0 {
		return resp, nil
	}

	importance := map[string]int{}
	categories := map[string]int{}
	var sumLead, sumOnTime float64
	for _, s := range suppliers {
		if s.Status == entity.SupplierStatusActive {
			resp.Active++
		} else {
			resp.Inactive++
		}
		sumLead += float64(s.DeliveryDay)
		sumOnTime += s.OnTimeRate
		importance[s.Importance]++
		for _, c := range strings.Split(s.Category, ",") {
			c = strings.TrimSpace(c)
			if c != "" {
				categories[c]++
			}
		}
	}
	resp.AvgLeadTime = sumLead / float64(len(suppliers))
	resp.AvgOnTimeRate = sumOnTime / float64(len(suppliers))
	resp.Chart = chartPoints(importance)
	resp.CategoryChart = chartPoints(categories)

	ranked := make([]*entity.Supplier, len(suppliers))
	copy(ranked, suppliers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return reliability(ranked[i]) > reliability(ranked[j])
	})
	for i := 0; i < len(ranked) && i < 5; i++ {
		resp.Top5 = append(resp.Top5, rankedEntry(ranked[i]))
	}
	for i := len(ranked) - 1; i >= 0 && len(resp.Bottom5) < 5; i-- {
		resp.Bottom5 = append(resp.Bottom5, rankedEntry(ranked[i]))
	}

	return resp, nil
}

// ExportCSV serializa todos los proveedores al CSV del contrato.
func (uc *SupplierUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	suppliers, err := uc.supplierRepo.List(repository.SupplierFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(supplierCSVHeader); err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		record := []string{
			s.SupplierCode, s.Name, s.CompanyName, s.ContactPerson, s.Email,
			s.Phone, s.Address, s.Category, s.PaymentTerms, s.Importance,
			s.Status,
			strconv.Itoa(s.DeliveryDay),
			strconv.FormatFloat(s.OnTimeRate, 'f', -1, 64),
			strconv.Itoa(s.TotalOrders),
			strconv.Itoa(s.LateDeliveries),
			strconv.Itoa(s.Score),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF genera el directorio de proveedores en PDF.
func (uc *SupplierUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	suppliers, err := uc.supplierRepo.List(repository.SupplierFilter{})
	if err != nil {
		return nil, err
	}
	return uc.reports.SupplierDirectory(suppliers)
}

// ImportCSV carga proveedores desde un CSV. Archivos que no son UTF-8 válido
// se reinterpretan como ISO-8859-1 (los exports de Excel suelen venir así).
func (uc *SupplierUseCase) ImportCSV(ctx context.Context, data []byte, updatedBy string) (*dto.ImportResult, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("no se pudo decodificar el CSV: %w", domain.ErrInvalidInput)
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV vacío o ilegible: %w", domain.ErrInvalidInput)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, fmt.Errorf("el CSV no tiene columna name: %w", domain.ErrInvalidInput)
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	imported := 0
	now := time.Now().UTC()
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila %d ilegible: %w", imported+2, domain.ErrInvalidInput)
		}
		name := field(record, "name")
		if name == "" {
			continue
		}

		supplier := &entity.Supplier{
			ID:            uuid.NewString(),
			SupplierCode:  field(record, "supplierCode"),
			Name:          name,
			CompanyName:   field(record, "companyName"),
			ContactPerson: field(record, "contactPerson"),
			Email:         field(record, "email"),
			Phone:         field(record, "phone"),
			Address:       field(record, "address"),
			Category:      field(record, "category"),
			PaymentTerms:  field(record, "paymentTerms"),
			Importance:    field(record, "importanceLevel"),
			Status:        field(record, "status"),
			CreatedAt:     now,
			UpdatedAt:     now,
			UpdatedBy:     updatedBy,
		}
		supplier.DeliveryDay, _ = strconv.Atoi(field(record, "delivery_day"))
		supplier.OnTimeRate, _ = strconv.ParseFloat(field(record, "onTimeRate"), 64)
		supplier.TotalOrders, _ = strconv.Atoi(field(record, "totalOrders"))
		supplier.LateDeliveries, _ = strconv.Atoi(field(record, "lateDeliveries"))
		supplier.Score, _ = strconv.Atoi(field(record, "score"))
		if supplier.Status == "" {
			supplier.Status = entity.SupplierStatusActive
		}
		if supplier.Importance == "" {
			supplier.Importance = entity.SupplierImportanceNormal
		}
		supplier.ReliabilityScore = reliability(supplier)

		if err := uc.supplierRepo.Create(supplier); err != nil {
			return nil, err
		}
		imported++
	}

	return &dto.ImportResult{
		Imported: imported,
		Message:  fmt.Sprintf("%d proveedores importados", imported),
	}, nil
}

// ──────────────────────────────────────────────

func supplierFromRequest(req dto.SupplierRequest) *entity.Supplier {
	return &entity.Supplier{
		SupplierCode:   req.SupplierCode,
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Category:       req.Category,
		PaymentTerms:   req.PaymentTerms,
		Importance:     req.Importance,
		Status:         req.Status,
		DeliveryDay:    req.DeliveryDay,
		OnTimeRate:     req.OnTimeRate,
		TotalOrders:    req.TotalOrders,
		LateDeliveries: req.LateDeliveries,
		Score:          req.Score,
	}
}

// reliability combina tasa de puntualidad, entregas tardías y puntaje manual
// en un valor 0-100. Heurística local mientras no exista el modelo externo.
func reliability(s *entity.Supplier) float64 {
	lateRatio := 0.0
	if s.TotalOrders > 0 {
		lateRatio = float64(s.LateDeliveries) / float64(s.TotalOrders)
	}
	score := s.OnTimeRate*0.6 + (1-lateRatio)*100*0.3 + float64(s.Score)*0.1
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func chartPoints(counts map[string]int) []dto.ChartPoint {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	points := make([]dto.ChartPoint, 0, len(labels))
	for _, l := range labels {
		points = append(points, dto.ChartPoint{Label: l, Value: counts[l]})
	}
	return points
}

func rankedEntry(s *entity.Supplier) dto.RankedSupplier {
	r := reliability(s)
	return dto.RankedSupplier{ID: s.ID, Label: s.Name, Value: r, Reliability: r}
}
