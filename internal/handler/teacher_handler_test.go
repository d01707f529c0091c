package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
)

type teacherServiceMock struct {
	teachers  []models.Teacher
	created   *service.TeacherRequest
	deleteErr error
}

func (m *teacherServiceMock) List(ctx context.Context) ([]models.Teacher, error) {
	return m.teachers, nil
}

func (m *teacherServiceMock) Get(ctx context.Context, id string) (*models.Teacher, error) {
	for i := range m.teachers {
		if m.teachers[i].ID == id {
			return &m.teachers[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Professeur non trouvé")
}

func (m *teacherServiceMock) Create(ctx context.Context, req service.TeacherRequest) (*models.Teacher, error) {
	m.created = &req
	return &models.Teacher{ID: "t-1", Nom: req.Nom, Prenom: req.Prenom}, nil
}

func (m *teacherServiceMock) Update(ctx context.Context, id string, req service.TeacherRequest) (*models.Teacher, error) {
	return &models.Teacher{ID: id, Nom: req.Nom}, nil
}

func (m *teacherServiceMock) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func newJSONContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTeacherHandlerListReturnsBareArray(t *testing.T) {
	handler := NewTeacherHandler(&teacherServiceMock{teachers: []models.Teacher{{ID: "t-1", Nom: "Dupont"}}})
	c, w := newJSONContext(http.MethodGet, "/api/professeurs", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var teachers []models.Teacher
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teachers))
	require.Len(t, teachers, 1)
	assert.Equal(t, "Dupont", teachers[0].Nom)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestTeacherHandlerGetNotFound(t *testing.T) {
	handler := NewTeacherHandler(&teacherServiceMock{})
	c, w := newJSONContext(http.MethodGet, "/api/professeurs/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Professeur non trouvé", body["error"])
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestTeacherHandlerCreate(t *testing.T) {
	mock := &teacherServiceMock{}
	handler := NewTeacherHandler(mock)
	payload, _ := json.Marshal(map[string]string{"nom": "Dupont", "prenom": "Marie"})
	c, w := newJSONContext(http.MethodPost, "/api/professeurs", payload)

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mock.created)
	assert.Equal(t, "Dupont", mock.created.Nom)
	assert.Equal(t, "t-1", decodeBody(t, w)["id"])
}

func TestTeacherHandlerCreateInvalidBody(t *testing.T) {
	handler := NewTeacherHandler(&teacherServiceMock{})
	c, w := newJSONContext(http.MethodPost, "/api/professeurs", []byte(`{invalid`))

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidBody, decodeBody(t, w)["error"])
}

func TestTeacherHandlerDelete(t *testing.T) {
	handler := NewTeacherHandler(&teacherServiceMock{})
	c, w := newJSONContext(http.MethodDelete, "/api/professeurs/t-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "t-1"}}

	handler.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Professeur supprimé avec succès", decodeBody(t, w)["message"])

	conflicted := NewTeacherHandler(&teacherServiceMock{deleteErr: appErrors.Clone(appErrors.ErrConflict, "Professeur encore lié")})
	c, w = newJSONContext(http.MethodDelete, "/api/professeurs/t-1", nil)
	conflicted.Delete(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}
