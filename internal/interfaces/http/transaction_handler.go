package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/ledger"
)

// Las transacciones de stock no se borran por el API: el libro es la pista de
// auditoría del inventario.
const auditIntegrityMessage = "Deleting stock transactions is not allowed to preserve audit integrity"

// TransactionHandler maneja las peticiones HTTP del libro de stock.
type TransactionHandler struct {
	uc *ledger.StockLedgerUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.StockLedgerUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción de stock
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "batchId, transactionType, quantity, recordedBy"
// @Success      201  {object}  dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	recordedBy := in.RecordedBy
	if recordedBy == "" {
		recordedBy = GetUserName(c)
	}
	tx, err := h.uc.Apply(c.Context(), ledger.ApplyInput{
		BatchID:    in.BatchID,
		Type:       in.TransactionType,
		Quantity:   in.Quantity,
		RecordedBy: recordedBy,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTransactionResponse(tx))
}

// List godoc
// @Summary      Listar transacciones (más recientes primero)
// @Tags         transactions
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	txs, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	out := make([]*dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.ToTransactionResponse(tx))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción por id
// @Tags         transactions
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	tx, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToTransactionResponse(tx))
}

// Update godoc
// @Summary      Enmendar transacción (reversa + reaplica, atómico)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "campos a enmendar (nil = sin cambio)"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.Amend(c.Context(), c.Params("id"), ledger.AmendInput{
		Type:       in.TransactionType,
		Quantity:   in.Quantity,
		RecordedBy: in.RecordedBy,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToTransactionResponse(tx))
}

// Delete godoc
// @Summary      Rechazado siempre: el libro de stock no se borra
// @Tags         transactions
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Failure      405  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	// Sin mirar el id ni la base: la respuesta es la misma exista o no.
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: auditIntegrityMessage,
	})
}
