package dto

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// SupplierRequest body para crear/actualizar un proveedor. Los nombres JSON
// replican el contrato del frontend (camelCase con delivery_day heredado).
type SupplierRequest struct {
	SupplierCode   string  `json:"supplierCode"`
	Name           string  `json:"name"`
	CompanyName    string  `json:"companyName"`
	ContactPerson  string  `json:"contactPerson"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Category       string  `json:"category"`
	PaymentTerms   string  `json:"paymentTerms"`
	Importance     string  `json:"importanceLevel"`
	Status         string  `json:"status"`
	DeliveryDay    int     `json:"delivery_day"`
	OnTimeRate     float64 `json:"onTimeRate"`
	TotalOrders    int     `json:"totalOrders"`
	LateDeliveries int     `json:"lateDeliveries"`
	Score          int     `json:"score"`
}

// SupplierResponse un proveedor.
type SupplierResponse struct {
	ID               string  `json:"id"`
	SupplierCode     string  `json:"supplierCode,omitempty"`
	Name             string  `json:"name"`
	CompanyName      string  `json:"companyName"`
	ContactPerson    string  `json:"contactPerson,omitempty"`
	Email            string  `json:"email,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Address          string  `json:"address,omitempty"`
	Category         string  `json:"category,omitempty"`
	PaymentTerms     string  `json:"paymentTerms,omitempty"`
	Importance       string  `json:"importanceLevel"`
	Status           string  `json:"status"`
	DeliveryDay      int     `json:"delivery_day"`
	OnTimeRate       float64 `json:"onTimeRate"`
	TotalOrders      int     `json:"totalOrders"`
	LateDeliveries   int     `json:"lateDeliveries"`
	Score            int     `json:"score"`
	ReliabilityScore float64 `json:"reliabilityScore"`
}

// ToSupplierResponse mapea la entidad al DTO.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:               s.ID,
		SupplierCode:     s.SupplierCode,
		Name:             s.Name,
		CompanyName:      s.CompanyName,
		ContactPerson:    s.ContactPerson,
		Email:            s.Email,
		Phone:            s.Phone,
		Address:          s.Address,
		Category:         s.Category,
		PaymentTerms:     s.PaymentTerms,
		Importance:       s.Importance,
		Status:           s.Status,
		DeliveryDay:      s.DeliveryDay,
		OnTimeRate:       s.OnTimeRate,
		TotalOrders:      s.TotalOrders,
		LateDeliveries:   s.LateDeliveries,
		Score:            s.Score,
		ReliabilityScore: s.ReliabilityScore,
	}
}

// ChartPoint un punto de los gráficos del tablero de proveedores.
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// RankedSupplier entrada del top/bottom 5 por confiabilidad.
type RankedSupplier struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Reliability float64 `json:"reliability"`
}

// SupplierAnalyticsResponse resumen del tablero de proveedores.
type SupplierAnalyticsResponse struct {
	Total         int              `json:"total"`
	Active        int              `json:"active"`
	Inactive      int              `json:"inactive"`
	AvgLeadTime   float64          `json:"avg_lead_time"`
	AvgOnTimeRate float64          `json:"avg_on_time_rate"`
	Chart         []ChartPoint     `json:"chart"`
	CategoryChart []ChartPoint     `json:"category_chart"`
	Top5          []RankedSupplier `json:"top5"`
	Bottom5       []RankedSupplier `json:"bottom5"`
}

// ImportResult resultado de la importación CSV de proveedores.
type ImportResult struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}
