package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
	"github.com/noah-isme/soutien-scolaire-api/pkg/response"
)

type payrollService interface {
	List(ctx context.Context) ([]models.Payslip, error)
	Get(ctx context.Context, id string) (*models.Payslip, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Payslip, error)
	Generate(ctx context.Context, teacherID string, req service.GeneratePayslipRequest) (*models.Payslip, error)
	Create(ctx context.Context, req service.PayslipRequest) (*models.Payslip, error)
	Delete(ctx context.Context, id string) error
}

type payslipDocuments interface {
	PayslipPDF(ctx context.Context, id string) (*service.Document, error)
}

// PayslipHandler wires fichePaie endpoints.
type PayslipHandler struct {
	payroll   payrollService
	documents payslipDocuments
}

// NewPayslipHandler constructs a new PayslipHandler.
func NewPayslipHandler(payroll payrollService, documents payslipDocuments) *PayslipHandler {
	return &PayslipHandler{payroll: payroll, documents: documents}
}

// List godoc
// @Summary List payslips
// @Tags FichePaies
// @Produce json
// @Success 200 {array} models.Payslip
// @Router /fichePaies [get]
func (h *PayslipHandler) List(c *gin.Context) {
	payslips, err := h.payroll.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payslips)
}

// Get godoc
// @Summary Get payslip detail
// @Tags FichePaies
// @Produce json
// @Param id path string true "Payslip ID"
// @Success 200 {object} models.Payslip
// @Router /fichePaies/{id} [get]
func (h *PayslipHandler) Get(c *gin.Context) {
	payslip, err := h.payroll.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payslip)
}

// ListByTeacher godoc
// @Summary List a teacher's payslips
// @Tags FichePaies
// @Produce json
// @Param professeurId path string true "Teacher ID"
// @Success 200 {array} models.Payslip
// @Router /fichePaies/professeur/{professeurId} [get]
func (h *PayslipHandler) ListByTeacher(c *gin.Context) {
	payslips, err := h.payroll.ListByTeacher(c.Request.Context(), c.Param("professeurId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payslips)
}

// Create godoc
// @Summary Create a payslip from totals
// @Tags FichePaies
// @Accept json
// @Produce json
// @Param payload body service.PayslipRequest true "Payslip payload"
// @Success 201 {object} models.Payslip
// @Router /fichePaies [post]
func (h *PayslipHandler) Create(c *gin.Context) {
	var req service.PayslipRequest
	if !bindJSON(c, &req) {
		return
	}
	payslip, err := h.payroll.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payslip)
}

// Generate godoc
// @Summary Generate the monthly payslip of a teacher
// @Tags FichePaies
// @Accept json
// @Produce json
// @Param professeurId path string true "Teacher ID"
// @Param payload body service.GeneratePayslipRequest true "Month and year"
// @Success 201 {object} models.Payslip
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /fichePaies/generer/{professeurId} [post]
func (h *PayslipHandler) Generate(c *gin.Context) {
	var req service.GeneratePayslipRequest
	if !bindJSON(c, &req) {
		return
	}
	payslip, err := h.payroll.Generate(c.Request.Context(), c.Param("professeurId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payslip)
}

// Delete godoc
// @Summary Delete payslip and its payment
// @Tags FichePaies
// @Param id path string true "Payslip ID"
// @Success 200 {object} response.MessageBody
// @Router /fichePaies/{id} [delete]
func (h *PayslipHandler) Delete(c *gin.Context) {
	if err := h.payroll.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Fiche de paie supprimée avec succès")
}

// PDF godoc
// @Summary Download payslip as PDF
// @Tags FichePaies
// @Produce application/pdf
// @Param id path string true "Payslip ID"
// @Success 200 {file} file
// @Router /fichePaies/{id}/pdf [get]
func (h *PayslipHandler) PDF(c *gin.Context) {
	doc, err := h.documents.PayslipPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, doc.Filename, doc.ContentType, doc.Data)
}
