package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/ports"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// FeedbackUseCase gestiona el feedback de clientes. Cada mensaje pasa por el
// clasificador de texto al crearse o editarse; la marca resultante gobierna
// qué puede eliminar el admin.
type FeedbackUseCase struct {
	feedbackRepo repository.FeedbackRepository
	classifier   ports.Classifier
}

// NewFeedbackUseCase crea el caso de uso de feedback.
func NewFeedbackUseCase(feedbackRepo repository.FeedbackRepository, classifier ports.Classifier) *FeedbackUseCase {
	return &FeedbackUseCase{feedbackRepo: feedbackRepo, classifier: classifier}
}

// List devuelve el feedback paginado, visible para cualquier rol.
func (uc *FeedbackUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.FeedbackResponse, error) {
	page.DefaultPage()
	feedbacks, err := uc.feedbackRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		out = append(out, dto.ToFeedbackResponse(f))
	}
	return out, nil
}

// Create registra un feedback nuevo y lo clasifica.
func (uc *FeedbackUseCase) Create(ctx context.Context, req dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if strings.TrimSpace(req.UserName) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("user_name y message son obligatorios: %w", domain.ErrInvalidInput)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating debe estar entre 1 y 5: %w", domain.ErrInvalidInput)
	}
	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleUser {
		return nil, fmt.Errorf("solo los clientes pueden crear feedback: %w", domain.ErrForbidden)
	}

	offensive, err := uc.classifier.Classify(ctx, req.Message)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	feedback := &entity.Feedback{
		ID:        uuid.NewString(),
		UserName:  req.UserName,
		Message:   req.Message,
		Rating:    req.Rating,
		Role:      role,
		Offensive: offensive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}
	return dto.ToFeedbackResponse(feedback), nil
}

// Update edita un feedback. Solo el autor puede editar el suyo; el mensaje
// editado se vuelve a clasificar.
func (uc *FeedbackUseCase) Update(ctx context.Context, id string, req dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback, err := uc.feedbackRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback %s: %w", id, domain.ErrNotFound)
	}
	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}
	if feedback.UserName != req.UserName || role != entity.RoleUser {
		return nil, fmt.Errorf("solo el autor puede editar su feedback: %w", domain.ErrForbidden)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("message es obligatorio: %w", domain.ErrInvalidInput)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating debe estar entre 1 y 5: %w", domain.ErrInvalidInput)
	}

	offensive, err := uc.classifier.Classify(ctx, req.Message)
	if err != nil {
		return nil, err
	}

	feedback.Message = req.Message
	feedback.Rating = req.Rating
	feedback.Offensive = offensive
	feedback.UpdatedAt = time.Now().UTC()

	if err := uc.feedbackRepo.Update(feedback); err != nil {
		return nil, err
	}
	return dto.ToFeedbackResponse(feedback), nil
}

// Reply agrega la respuesta del administrador a un feedback.
func (uc *FeedbackUseCase) Reply(ctx context.Context, id string, req dto.ReplyFeedbackRequest) (*dto.FeedbackResponse, error) {
	if req.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("solo el admin puede responder feedback: %w", domain.ErrForbidden)
	}
	feedback, err := uc.feedbackRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback %s: %w", id, domain.ErrNotFound)
	}

	feedback.Reply = req.Reply
	feedback.UpdatedAt = time.Now().UTC()

	if err := uc.feedbackRepo.Update(feedback); err != nil {
		return nil, err
	}
	return dto.ToFeedbackResponse(feedback), nil
}

// Delete elimina un feedback. El admin solo puede eliminar mensajes marcados
// como ofensivos; el autor puede eliminar el propio sin restricción.
func (uc *FeedbackUseCase) Delete(ctx context.Context, id, userName, role string) error {
	feedback, err := uc.feedbackRepo.GetByID(id)
	if err != nil {
		return err
	}
	if feedback == nil {
		return fmt.Errorf("feedback %s: %w", id, domain.ErrNotFound)
	}

	switch {
	case role == entity.RoleAdmin:
		if !feedback.Offensive {
			return fmt.Errorf("el admin solo puede eliminar feedback ofensivo: %w", domain.ErrForbidden)
		}
	case feedback.UserName == userName:
		// el autor elimina el suyo
	default:
		return fmt.Errorf("no puede eliminar feedback de otro usuario: %w", domain.ErrForbidden)
	}

	return uc.feedbackRepo.Delete(id)
}
