package entity

import "time"

// Roles reconocidos en el módulo de feedback.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Feedback es un comentario de cliente con calificación. Offensive lo marca
// el clasificador de texto al crear o actualizar el mensaje; el admin solo
// puede eliminar feedbacks marcados como ofensivos.
type Feedback struct {
	ID        string
	UserName  string
	Message   string
	Rating    int
	Reply     string
	Role      string
	Offensive bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
