package repository

import "github.com/ransara-lk/supermarket-api/internal/domain/entity"

// FeedbackRepository define el puerto de persistencia para feedback.
type FeedbackRepository interface {
	Create(feedback *entity.Feedback) error
	GetByID(id string) (*entity.Feedback, error)
	Update(feedback *entity.Feedback) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Feedback, error)
}
