package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
)

func newFeedbackFixture(t *testing.T) (*usecase.FeedbackUseCase, *memFeedbackRepo) {
	t.Helper()
	repo := newMemFeedbackRepo()
	return usecase.NewFeedbackUseCase(repo, stubClassifier{}), repo
}

func createFeedback(t *testing.T, uc *usecase.FeedbackUseCase, user, message string) *dto.FeedbackResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
		UserName: user, Message: message, Rating: 4, Role: entity.RoleUser,
	})
	require.NoError(t, err)
	return resp
}

// TestFeedbackCreate_Clasifica: todo mensaje nuevo pasa por el clasificador.
func TestFeedbackCreate_Clasifica(t *testing.T) {
	uc, _ := newFeedbackFixture(t)

	limpio := createFeedback(t, uc, "ana", "Excelente atención en caja")
	assert.False(t, limpio.Offensive)

	ofensivo := createFeedback(t, uc, "luis", "odio este lugar y a su gente")
	assert.True(t, ofensivo.Offensive)
}

// Solo los clientes dejan feedback; el admin responde, no crea.
func TestFeedbackCreate_SoloClientes(t *testing.T) {
	uc, _ := newFeedbackFixture(t)
	_, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
		UserName: "root", Message: "nota interna", Rating: 5, Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFeedbackCreate_RatingInvalido(t *testing.T) {
	uc, _ := newFeedbackFixture(t)
	_, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
		UserName: "ana", Message: "bien", Rating: 6,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestFeedbackUpdate_SoloAutor: nadie edita el feedback de otro.
func TestFeedbackUpdate_SoloAutor(t *testing.T) {
	uc, _ := newFeedbackFixture(t)
	created := createFeedback(t, uc, "ana", "Buen surtido")

	_, err := uc.Update(context.Background(), created.ID, dto.UpdateFeedbackRequest{
		UserName: "luis", Message: "cambiado", Rating: 1, Role: entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// TestFeedbackUpdate_Reclasifica: editar el mensaje vuelve a clasificarlo.
func TestFeedbackUpdate_Reclasifica(t *testing.T) {
	uc, _ := newFeedbackFixture(t)
	created := createFeedback(t, uc, "ana", "Buen surtido")
	require.False(t, created.Offensive)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateFeedbackRequest{
		UserName: "ana", Message: "odio las filas eternas", Rating: 2, Role: entity.RoleUser,
	})
	require.NoError(t, err)
	assert.True(t, updated.Offensive)
}

// TestFeedbackDelete_MatrizDeRoles: el admin solo elimina feedback ofensivo;
// el autor elimina el propio; nadie elimina el ajeno.
func TestFeedbackDelete_MatrizDeRoles(t *testing.T) {
	uc, repo := newFeedbackFixture(t)

	limpio := createFeedback(t, uc, "ana", "Todo bien")
	ofensivo := createFeedback(t, uc, "luis", "odio todo esto")

	// admin contra feedback limpio: prohibido
	err := uc.Delete(context.Background(), limpio.ID, "root", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// otro usuario contra feedback ajeno: prohibido
	err = uc.Delete(context.Background(), limpio.ID, "luis", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// admin contra feedback ofensivo: permitido
	require.NoError(t, uc.Delete(context.Background(), ofensivo.ID, "root", entity.RoleAdmin))
	assert.NotContains(t, repo.feedbacks, ofensivo.ID)

	// el autor contra el suyo: permitido
	require.NoError(t, uc.Delete(context.Background(), limpio.ID, "ana", entity.RoleUser))
	assert.NotContains(t, repo.feedbacks, limpio.ID)
}

// TestFeedbackReply_SoloAdmin: responder es privilegio del admin.
func TestFeedbackReply_SoloAdmin(t *testing.T) {
	uc, _ := newFeedbackFixture(t)
	created := createFeedback(t, uc, "ana", "¿Tendrán más cajas abiertas?")

	_, err := uc.Reply(context.Background(), created.ID, dto.ReplyFeedbackRequest{
		Reply: "no puedo", Role: entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	replied, err := uc.Reply(context.Background(), created.ID, dto.ReplyFeedbackRequest{
		Reply: "Sí, desde el lunes", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sí, desde el lunes", replied.Reply)
}
