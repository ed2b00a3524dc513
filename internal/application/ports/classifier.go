package ports

import "context"

// Classifier decide si un texto de feedback es ofensivo. La implementación
// puede ser un modelo remoto o una heurística local de respaldo.
type Classifier interface {
	Classify(ctx context.Context, text string) (bool, error)
}
