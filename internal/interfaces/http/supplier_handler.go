package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// SupplierHandler maneja las peticiones HTTP de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "datos del proveedor"
// @Success      201  {object}  dto.SupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.Create(c.Context(), in, GetUserName(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// GetByID godoc
// @Summary      Obtener proveedor por id
// @Tags         suppliers
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(supplier)
}

// List godoc
// @Summary      Listar proveedores con búsqueda, filtros y orden
// @Tags         suppliers
// @Produce      json
// @Param        search    query  string  false  "texto sobre nombre, empresa o código"
// @Param        category  query  string  false  "filtro por categoría"
// @Param        status    query  string  false  "Active o Inactive"
// @Param        sort      query  string  false  "name-asc|name-desc|score-asc|score-desc"
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	filter := repository.SupplierFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
	}
	suppliers, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(suppliers)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.SupplierRequest  true  "datos del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserName(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(supplier)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Analytics godoc
// @Summary      Tablero de analítica de proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.SupplierAnalyticsResponse
// @Router       /api/suppliers/analytics [get]
func (h *SupplierHandler) Analytics(c *fiber.Ctx) error {
	resp, err := h.uc.Analytics(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// ExportCSV godoc
// @Summary      Exportar proveedores como CSV
// @Tags         suppliers
// @Produce      text/csv
// @Success      200
// @Router       /api/suppliers/export/csv [get]
func (h *SupplierHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.uc.ExportCSV(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="suppliers.csv"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar el directorio de proveedores como PDF
// @Tags         suppliers
// @Produce      application/pdf
// @Success      200
// @Router       /api/suppliers/export/pdf [get]
func (h *SupplierHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportPDF(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="suppliers.pdf"`)
	return c.Send(data)
}

// ImportCSV godoc
// @Summary      Importar proveedores desde un CSV (multipart "file" o cuerpo crudo)
// @Tags         suppliers
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  dto.ImportResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers/import/csv [post]
func (h *SupplierHandler) ImportCSV(c *fiber.Ctx) error {
	data, err := importPayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	result, err := h.uc.ImportCSV(c.Context(), data, GetUserName(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(result)
}

// Los endpoints /ai/* conservan el contrato del frontend mientras el modelo
// de predicción de confiabilidad no esté conectado.

// TrainModel godoc
// @Summary      Entrenar el modelo de confiabilidad (pendiente de conectar)
// @Tags         suppliers-ai
// @Produce      json
// @Success      200
// @Router       /api/suppliers/ai/train [post]
func (h *SupplierHandler) TrainModel(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "not_implemented",
		"message": "AI model training will be connected in a future release.",
	})
}

// PredictReliability godoc
// @Summary      Predicción de confiabilidad de un proveedor (pendiente)
// @Tags         suppliers-ai
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/ai/predict/{id} [get]
func (h *SupplierHandler) PredictReliability(c *fiber.Ctx) error {
	supplier, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"supplier_id":                 supplier.ID,
		"company_name":                supplier.CompanyName,
		"predicted_reliability_score": 0,
		"rating":                      "N/A",
		"message":                     "AI model not yet implemented.",
	})
}

// PredictAll godoc
// @Summary      Predicción masiva de confiabilidad (pendiente)
// @Tags         suppliers-ai
// @Produce      json
// @Success      200
// @Router       /api/suppliers/ai/predict-all [post]
func (h *SupplierHandler) PredictAll(c *fiber.Ctx) error {
	suppliers, err := h.uc.List(c.Context(), repository.SupplierFilter{})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"updated": 0,
		"total":   len(suppliers),
		"message": "AI model not yet implemented. Scores will be calculated once the model is connected.",
	})
}

// Recommendations godoc
// @Summary      Recomendaciones de proveedores (pendiente)
// @Tags         suppliers-ai
// @Produce      json
// @Success      200
// @Router       /api/suppliers/ai/recommendations [get]
func (h *SupplierHandler) Recommendations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI recommendations will be available once the model is connected.",
		"data":    fiber.Map{},
	})
}

// importPayload toma el CSV del campo multipart "file" o, en su defecto, del
// cuerpo de la petición.
func importPayload(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Body(), nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
