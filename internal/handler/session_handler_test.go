package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
)

type sessionServiceMock struct {
	enrolled  map[string]bool
	sessionID string
}

func (m *sessionServiceMock) List(ctx context.Context) ([]models.Session, error) {
	return []models.Session{}, nil
}

func (m *sessionServiceMock) Get(ctx context.Context, id string) (*models.Session, error) {
	return &models.Session{ID: id}, nil
}

func (m *sessionServiceMock) ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error) {
	return []models.Session{}, nil
}

func (m *sessionServiceMock) Create(ctx context.Context, req service.SessionRequest) (*models.Session, error) {
	return &models.Session{ID: "p-1"}, nil
}

func (m *sessionServiceMock) Update(ctx context.Context, id string, req service.SessionRequest) (*models.Session, error) {
	return &models.Session{ID: id}, nil
}

func (m *sessionServiceMock) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *sessionServiceMock) Enroll(ctx context.Context, sessionID, studentID string) error {
	m.sessionID = sessionID
	if m.enrolled[studentID] {
		return appErrors.Clone(appErrors.ErrAlreadyEnrolled, "L'élève est déjà inscrit à cette programmation")
	}
	m.enrolled[studentID] = true
	return nil
}

func (m *sessionServiceMock) Unenroll(ctx context.Context, sessionID, studentID string) error {
	if !m.enrolled[studentID] {
		return appErrors.Clone(appErrors.ErrNotFound, "L'élève n'est pas inscrit à cette programmation")
	}
	delete(m.enrolled, studentID)
	return nil
}

func TestSessionHandlerEnrollment(t *testing.T) {
	mock := &sessionServiceMock{enrolled: map[string]bool{}}
	handler := NewSessionHandler(mock)
	params := gin.Params{{Key: "id", Value: "p-1"}, {Key: "eleveId", Value: "e-1"}}

	c, w := newJSONContext(http.MethodPost, "/api/programmations/p-1/eleves/e-1", nil)
	c.Params = params
	handler.Enroll(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p-1", mock.sessionID)
	assert.Equal(t, "Élève ajouté à la programmation avec succès", decodeBody(t, w)["message"])

	c, w = newJSONContext(http.MethodPost, "/api/programmations/p-1/eleves/e-1", nil)
	c.Params = params
	handler.Enroll(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ALREADY_ENROLLED", decodeBody(t, w)["code"])

	c, w = newJSONContext(http.MethodDelete, "/api/programmations/p-1/eleves/e-1", nil)
	c.Params = params
	handler.Unenroll(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = newJSONContext(http.MethodDelete, "/api/programmations/p-1/eleves/e-1", nil)
	c.Params = params
	handler.Unenroll(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
