package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
	"github.com/noah-isme/soutien-scolaire-api/pkg/response"
)

type sessionService interface {
	List(ctx context.Context) ([]models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error)
	Create(ctx context.Context, req service.SessionRequest) (*models.Session, error)
	Update(ctx context.Context, id string, req service.SessionRequest) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	Enroll(ctx context.Context, sessionID, studentID string) error
	Unenroll(ctx context.Context, sessionID, studentID string) error
}

// SessionHandler wires programmation endpoints.
type SessionHandler struct {
	sessions sessionService
}

// NewSessionHandler constructs a new SessionHandler.
func NewSessionHandler(sessions sessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List godoc
// @Summary List sessions
// @Tags Programmations
// @Produce json
// @Success 200 {array} models.Session
// @Router /programmations [get]
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions)
}

// Get godoc
// @Summary Get session detail
// @Tags Programmations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Session
// @Router /programmations/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// ListByTeacher godoc
// @Summary List a teacher's sessions
// @Tags Programmations
// @Produce json
// @Param professeurId path string true "Teacher ID"
// @Success 200 {array} models.Session
// @Router /programmations/professeur/{professeurId} [get]
func (h *SessionHandler) ListByTeacher(c *gin.Context) {
	sessions, err := h.sessions.ListByTeacher(c.Request.Context(), c.Param("professeurId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions)
}

// Create godoc
// @Summary Schedule a session
// @Tags Programmations
// @Accept json
// @Produce json
// @Param payload body service.SessionRequest true "Session payload"
// @Success 201 {object} models.Session
// @Router /programmations [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req service.SessionRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.sessions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Update godoc
// @Summary Replace session
// @Tags Programmations
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body service.SessionRequest true "Session payload"
// @Success 200 {object} models.Session
// @Router /programmations/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	var req service.SessionRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.sessions.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// Delete godoc
// @Summary Delete session
// @Tags Programmations
// @Param id path string true "Session ID"
// @Success 200 {object} response.MessageBody
// @Router /programmations/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Programmation supprimée avec succès")
}

// Enroll godoc
// @Summary Enroll a student
// @Tags Programmations
// @Param id path string true "Session ID"
// @Param eleveId path string true "Student ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} errors.Error
// @Router /programmations/{id}/eleves/{eleveId} [post]
func (h *SessionHandler) Enroll(c *gin.Context) {
	if err := h.sessions.Enroll(c.Request.Context(), c.Param("id"), c.Param("eleveId")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Élève ajouté à la programmation avec succès")
}

// Unenroll godoc
// @Summary Unenroll a student
// @Tags Programmations
// @Param id path string true "Session ID"
// @Param eleveId path string true "Student ID"
// @Success 200 {object} response.MessageBody
// @Router /programmations/{id}/eleves/{eleveId} [delete]
func (h *SessionHandler) Unenroll(c *gin.Context) {
	if err := h.sessions.Unenroll(c.Request.Context(), c.Param("id"), c.Param("eleveId")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Élève retiré de la programmation avec succès")
}
