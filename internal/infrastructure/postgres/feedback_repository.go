package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo implementación de FeedbackRepository sobre PostgreSQL.
type FeedbackRepo struct {
	q Querier
}

// NewFeedbackRepository construye el adaptador de feedback.
func NewFeedbackRepository(q Querier) *FeedbackRepo {
	return &FeedbackRepo{q: q}
}

// Create inserta un feedback nuevo.
func (r *FeedbackRepo) Create(f *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_name, message, rating, reply, role, offensive, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.UserName, f.Message, f.Rating, f.Reply, f.Role, f.Offensive,
		f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// GetByID obtiene un feedback por id, o nil si no existe.
func (r *FeedbackRepo) GetByID(id string) (*entity.Feedback, error) {
	query := `
		SELECT id, user_name, message, rating, reply, role, offensive, created_at, updated_at
		FROM feedback WHERE id = $1`
	var f entity.Feedback
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.UserName, &f.Message, &f.Rating, &f.Reply, &f.Role,
		&f.Offensive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return &f, nil
}

// Update reescribe mensaje, rating, respuesta y clasificación.
func (r *FeedbackRepo) Update(f *entity.Feedback) error {
	query := `
		UPDATE feedback
		SET message = $2, rating = $3, reply = $4, offensive = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Message, f.Rating, f.Reply, f.Offensive, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	return nil
}

// Delete elimina un feedback.
func (r *FeedbackRepo) Delete(id string) error {
	query := `DELETE FROM feedback WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

// List devuelve el feedback paginado, más reciente primero.
func (r *FeedbackRepo) List(limit, offset int) ([]*entity.Feedback, error) {
	query := `
		SELECT id, user_name, message, rating, reply, role, offensive, created_at, updated_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var list []*entity.Feedback
	for rows.Next() {
		var f entity.Feedback
		if err := rows.Scan(&f.ID, &f.UserName, &f.Message, &f.Rating, &f.Reply,
			&f.Role, &f.Offensive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
