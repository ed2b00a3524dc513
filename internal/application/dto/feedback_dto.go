package dto

import (
	"time"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

// CreateFeedbackRequest body para POST /api/feedback.
type CreateFeedbackRequest struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
	Role     string `json:"role"`
}

// UpdateFeedbackRequest body para PUT /api/feedback/{id}. UserName y Role
// identifican al solicitante (solo el dueño puede actualizar).
type UpdateFeedbackRequest struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
	Role     string `json:"role"`
}

// ReplyFeedbackRequest body para PUT /api/feedback/reply/{id} (solo admin).
type ReplyFeedbackRequest struct {
	Reply string `json:"reply"`
	Role  string `json:"role"`
}

// FeedbackResponse un feedback con su clasificación.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	Reply     string    `json:"reply,omitempty"`
	Role      string    `json:"role"`
	Offensive bool      `json:"offensive"`
	CreatedAt time.Time `json:"created_at"`
}

// ToFeedbackResponse mapea la entidad al DTO.
func ToFeedbackResponse(f *entity.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		UserName:  f.UserName,
		Message:   f.Message,
		Rating:    f.Rating,
		Reply:     f.Reply,
		Role:      f.Role,
		Offensive: f.Offensive,
		CreatedAt: f.CreatedAt,
	}
}
