package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ransara-lk/supermarket-api/internal/application/ports"
)

// Verificar en tiempo de compilación que ModerationService implementa Classifier.
var _ ports.Classifier = (*ModerationService)(nil)

// Palabras que marcan un mensaje como ofensivo cuando el servicio externo no
// está disponible. Lista corta a propósito: el modelo remoto es el camino
// principal, esto es solo la red de seguridad.
var offensiveWords = []string{
	"odio", "idiota", "estúpido", "estupido", "basura", "asco",
	"inútil", "inutil", "maldito", "porquería", "porqueria",
	"hate", "stupid", "idiot", "trash", "garbage", "useless",
}

// ModerationService clasifica texto de feedback como ofensivo o no. Llama a
// un servicio de moderación por HTTP; si el endpoint no está configurado o la
// llamada falla, cae a la heurística local de palabras.
type ModerationService struct {
	endpoint   string
	httpClient *http.Client
}

// NewModerationService construye el clasificador. Con endpoint vacío opera
// siempre en modo heurístico local.
func NewModerationService(endpoint string) *ModerationService {
	return &ModerationService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type moderationRequest struct {
	Text string `json:"text"`
}

type moderationResponse struct {
	Offensive bool `json:"offensive"`
}

// Classify decide si el texto es ofensivo.
func (s *ModerationService) Classify(ctx context.Context, text string) (bool, error) {
	if s.endpoint == "" {
		return classifyLocal(text), nil
	}

	offensive, err := s.classifyRemote(ctx, text)
	if err != nil {
		// El feedback no puede quedarse sin clasificar por una caída del
		// servicio externo.
		return classifyLocal(text), nil
	}
	return offensive, nil
}

func (s *ModerationService) classifyRemote(ctx context.Context, text string) (bool, error) {
	body, err := json.Marshal(moderationRequest{Text: text})
	if err != nil {
		return false, fmt.Errorf("moderation: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("moderation: crear HTTP request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("moderation: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return false, fmt.Errorf("moderation: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("moderation: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var modResp moderationResponse
	if err := json.Unmarshal(rawBody, &modResp); err != nil {
		return false, fmt.Errorf("moderation: deserializar respuesta: %w", err)
	}
	return modResp.Offensive, nil
}

// classifyLocal busca palabras de la lista dentro del texto en minúsculas.
func classifyLocal(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range offensiveWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
