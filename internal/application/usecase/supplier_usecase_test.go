package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

func newSupplierFixture(t *testing.T) (*usecase.SupplierUseCase, *memSupplierRepo) {
	t.Helper()
	repo := newMemSupplierRepo()
	return usecase.NewSupplierUseCase(repo, stubReports{}), repo
}

func createSupplier(t *testing.T, uc *usecase.SupplierUseCase, req dto.SupplierRequest) *dto.SupplierResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), req, "tester")
	require.NoError(t, err)
	return resp
}

func TestSupplierCreate_Defaults(t *testing.T) {
	uc, _ := newSupplierFixture(t)

	resp := createSupplier(t, uc, dto.SupplierRequest{Name: "Lácteos del Valle"})
	assert.Equal(t, entity.SupplierStatusActive, resp.Status)
	assert.Equal(t, entity.SupplierImportanceNormal, resp.Importance)
}

func TestSupplierCreate_SinNombre(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	_, err := uc.Create(context.Background(), dto.SupplierRequest{}, "tester")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestSupplierCSV_RoundTrip: exportar e importar el CSV reproduce los datos.
func TestSupplierCSV_RoundTrip(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	createSupplier(t, uc, dto.SupplierRequest{
		SupplierCode: "PRV-001",
		Name:         "Lácteos del Valle",
		CompanyName:  "Lácteos del Valle S.A.",
		Category:     "Lácteos, Bebidas",
		Status:       entity.SupplierStatusActive,
		DeliveryDay:  3,
		OnTimeRate:   92.5,
		TotalOrders:  40,
		Score:        80,
	})

	data, err := uc.ExportCSV(context.Background())
	require.NoError(t, err)

	fresh, freshRepo := newSupplierFixture(t)
	result, err := fresh.ImportCSV(context.Background(), data, "tester")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	list, err := freshRepo.List(repository.SupplierFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lácteos del Valle", list[0].Name)
	assert.Equal(t, "PRV-001", list[0].SupplierCode)
	assert.Equal(t, 3, list[0].DeliveryDay)
	assert.InDelta(t, 92.5, list[0].OnTimeRate, 0.001)
	assert.Equal(t, 40, list[0].TotalOrders)
}

// TestSupplierImport_Latin1: un CSV en ISO-8859-1 (export típico de Excel) se
// decodifica en vez de rechazarse.
func TestSupplierImport_Latin1(t *testing.T) {
	uc, repo := newSupplierFixture(t)

	csvUTF8 := "supplierCode,name\nPRV-002,Cafetería Andina\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(csvUTF8)
	require.NoError(t, err)

	result, err := uc.ImportCSV(context.Background(), []byte(latin1), "tester")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	list, err := repo.List(repository.SupplierFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cafetería Andina", list[0].Name)
}

func TestSupplierImport_SinColumnaName(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	_, err := uc.ImportCSV(context.Background(), []byte("code,phone\n1,2\n"), "tester")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestSupplierAnalytics: conteos, promedios y distribución por categoría
// (las categorías separadas por coma cuentan una vez cada una).
func TestSupplierAnalytics(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	createSupplier(t, uc, dto.SupplierRequest{
		Name: "A", Status: entity.SupplierStatusActive,
		Category: "Lácteos, Bebidas", DeliveryDay: 2, OnTimeRate: 90,
	})
	createSupplier(t, uc, dto.SupplierRequest{
		Name: "B", Status: entity.SupplierStatusInactive,
		Category: "Bebidas", DeliveryDay: 4, OnTimeRate: 70,
	})

	resp, err := uc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Active)
	assert.Equal(t, 1, resp.Inactive)
	assert.InDelta(t, 3.0, resp.AvgLeadTime, 0.001)
	assert.InDelta(t, 80.0, resp.AvgOnTimeRate, 0.001)

	categorias := map[string]int{}
	for _, p := range resp.CategoryChart {
		categorias[p.Label] = p.Value
	}
	assert.Equal(t, map[string]int{"Bebidas": 2, "Lácteos": 1}, categorias)
}

// TestSupplierAnalytics_Ranking: el top y bottom 5 ordenan por confiabilidad.
func TestSupplierAnalytics_Ranking(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	createSupplier(t, uc, dto.SupplierRequest{Name: "Puntual", OnTimeRate: 98, TotalOrders: 50, Score: 90})
	createSupplier(t, uc, dto.SupplierRequest{Name: "Tardío", OnTimeRate: 40, TotalOrders: 50, LateDeliveries: 30, Score: 20})

	resp, err := uc.Analytics(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, resp.Top5)
	require.NotEmpty(t, resp.Bottom5)
	assert.Equal(t, "Puntual", resp.Top5[0].Label)
	assert.Equal(t, "Tardío", resp.Bottom5[0].Label)
	assert.Greater(t, resp.Top5[0].Reliability, resp.Bottom5[0].Reliability)
}

func TestSupplierAnalytics_Vacio(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	resp, err := uc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Top5)
}
