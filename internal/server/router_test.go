package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/repository/memory"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	handlers := NewHandlers(Dependencies{
		Repos: Repositories{
			Teachers: memory.NewTeacherRepository(store),
			Students: memory.NewStudentRepository(store),
			Courses:  memory.NewCourseRepository(store),
			Rooms:    memory.NewRoomRepository(store),
			Sessions: memory.NewSessionRepository(store),
			Payments: memory.NewPaymentRepository(store),
			Receipts: memory.NewReceiptRepository(store),
			Payslips: memory.NewPayslipRepository(store),
		},
		Metrics:           service.NewMetricsService(),
		OrgName:           "Centre de soutien",
		DefaultHourlyRate: 25,
	})
	return NewRouter(handlers, Options{APIPrefix: "/api", EnableMetrics: true})
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func created(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRouterPayrollFlow(t *testing.T) {
	r := newTestRouter(t)

	teacher := created(t, do(t, r, http.MethodPost, "/api/professeurs", map[string]interface{}{
		"nom": "Dupont", "prenom": "Marie", "email": "marie@example.com", "telephone": "0600000000",
		"diplome": "Master", "specialite": "Maths", "status": "actif",
	}))
	course := created(t, do(t, r, http.MethodPost, "/api/cours", map[string]interface{}{
		"matiere": "Maths", "niveau": "3ème", "salaireParHeure": 500,
	}))
	room := created(t, do(t, r, http.MethodPost, "/api/salles", map[string]interface{}{
		"nom": "Salle A", "capacite": 10, "status": "disponible",
	}))
	for _, day := range []string{"2024-03-01", "2024-03-15", "2024-03-31"} {
		created(t, do(t, r, http.MethodPost, "/api/programmations", map[string]interface{}{
			"coursId": course["id"], "professeurId": teacher["id"], "salleId": room["id"],
			"date": day, "heure": "10:00", "duree": 90,
		}))
	}

	payslip := created(t, do(t, r, http.MethodPost, "/api/fichePaies/generer/"+teacher["id"].(string), map[string]int{"mois": 3, "annee": 2024}))
	assert.InDelta(t, 4.5, payslip["totalHeures"], 1e-9)
	assert.InDelta(t, 2250, payslip["totalSalaire"], 1e-9)
	assert.Len(t, payslip["programmationIds"], 3)

	w := do(t, r, http.MethodPost, "/api/fichePaies/generer/"+teacher["id"].(string), map[string]int{"mois": 4, "annee": 2024})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Aucune programmation trouvée pour ce mois")

	w = do(t, r, http.MethodGet, "/api/fichePaies/"+payslip["id"].(string)+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	w = do(t, r, http.MethodDelete, "/api/professeurs/"+teacher["id"].(string), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouterReceiptAndEnrollmentFlow(t *testing.T) {
	r := newTestRouter(t)

	student := created(t, do(t, r, http.MethodPost, "/api/eleves", map[string]interface{}{
		"nom": "Bernard", "prenom": "Léo", "email": "leo@example.com", "telephone": "0611111111",
		"niveau": "3ème", "telParents": "0622222222", "dateInscription": "2023-09-04",
	}))
	teacher := created(t, do(t, r, http.MethodPost, "/api/professeurs", map[string]interface{}{
		"nom": "Dupont", "prenom": "Marie", "email": "marie@example.com", "telephone": "0600000000",
		"diplome": "Master", "specialite": "Maths", "status": "actif",
	}))
	maths := created(t, do(t, r, http.MethodPost, "/api/cours", map[string]interface{}{"matiere": "Maths", "niveau": "3ème", "salaireParHeure": 20}))
	physique := created(t, do(t, r, http.MethodPost, "/api/cours", map[string]interface{}{"matiere": "Physique", "niveau": "3ème", "salaireParHeure": 22}))
	room := created(t, do(t, r, http.MethodPost, "/api/salles", map[string]interface{}{"nom": "Salle A", "capacite": 10, "status": "disponible"}))
	session := created(t, do(t, r, http.MethodPost, "/api/programmations", map[string]interface{}{
		"coursId": maths["id"], "professeurId": teacher["id"], "salleId": room["id"],
		"date": "2024-03-04", "heure": "10:00", "duree": 60,
	}))

	enroll := "/api/programmations/" + session["id"].(string) + "/eleves/" + student["id"].(string)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPost, enroll, nil).Code)
	w := do(t, r, http.MethodPost, enroll, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "L'élève est déjà inscrit à cette programmation")

	receipt := created(t, do(t, r, http.MethodPost, "/api/recuPaiements", map[string]interface{}{
		"eleveId": student["id"], "coursIds": []interface{}{physique["id"]}, "montant": 88, "methode": "espèces", "date": "2024-03-01",
	}))
	w = do(t, r, http.MethodGet, "/api/recuPaiements/"+receipt["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), physique["id"].(string))

	w = do(t, r, http.MethodGet, "/api/cours/eleve/"+student["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var courses []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	assert.Len(t, courses, 2)

	w = do(t, r, http.MethodGet, "/api/eleves/"+student["id"].(string)+"/programmations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), session["id"].(string))

	w = do(t, r, http.MethodGet, "/api/paiements/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "88.00")

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/api/recuPaiements/"+receipt["id"].(string), nil).Code)
	w = do(t, r, http.MethodGet, "/api/paiements", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouterEmptyListsAreArrays(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/professeurs", "/api/eleves", "/api/cours", "/api/salles", "/api/programmations", "/api/paiements", "/api/fichePaies", "/api/recuPaiements"} {
		w := do(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}
	w := do(t, r, http.MethodGet, "/", nil)
	assert.Contains(t, w.Body.String(), "API de gestion du centre de soutien scolaire")
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/metrics", nil).Code)
}
