package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
)

// FeedbackHandler maneja las peticiones HTTP de feedback de clientes.
type FeedbackHandler struct {
	uc *usecase.FeedbackUseCase
}

// NewFeedbackHandler construye el handler.
func NewFeedbackHandler(uc *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// List godoc
// @Summary      Listar feedback (visible para cualquier rol)
// @Tags         feedback
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {array}  dto.FeedbackResponse
// @Router       /api/feedback [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	feedbacks, err := h.uc.List(c.Context(), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(feedbacks)
}

// Create godoc
// @Summary      Crear feedback (el mensaje se clasifica automáticamente)
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFeedbackRequest  true  "user_name, message, rating, role"
// @Success      201  {object}  dto.FeedbackResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/feedback [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserName == "" {
		in.UserName = GetUserName(c)
	}
	if in.Role == "" {
		in.Role = GetRole(c)
	}
	feedback, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// Update godoc
// @Summary      Editar feedback (solo el autor; se vuelve a clasificar)
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del feedback"
// @Param        body  body  dto.UpdateFeedbackRequest  true  "user_name, message, rating"
// @Success      200  {object}  dto.FeedbackResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feedback/{id} [put]
func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserName == "" {
		in.UserName = GetUserName(c)
	}
	feedback, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(feedback)
}

// Reply godoc
// @Summary      Responder un feedback (solo admin)
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del feedback"
// @Param        body  body  dto.ReplyFeedbackRequest  true  "reply, role"
// @Success      200  {object}  dto.FeedbackResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feedback/reply/{id} [put]
func (h *FeedbackHandler) Reply(c *fiber.Ctx) error {
	var in dto.ReplyFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Role == "" {
		in.Role = GetRole(c)
	}
	feedback, err := h.uc.Reply(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(feedback)
}

// Delete godoc
// @Summary      Eliminar feedback (admin: solo ofensivo; autor: el propio)
// @Tags         feedback
// @Produce      json
// @Param        id         path   string  true   "ID del feedback"
// @Param        user_name  query  string  false  "autor solicitante"
// @Param        role       query  string  false  "rol solicitante"
// @Success      200  {object}  dto.StatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feedback/{id} [delete]
func (h *FeedbackHandler) Delete(c *fiber.Ctx) error {
	userName := c.Query("user_name")
	if userName == "" {
		userName = GetUserName(c)
	}
	role := c.Query("role")
	if role == "" {
		role = GetRole(c)
	}
	if err := h.uc.Delete(c.Context(), c.Params("id"), userName, role); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "Feedback deleted"})
}
