package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
	"github.com/noah-isme/soutien-scolaire-api/pkg/response"
)

type receiptService interface {
	List(ctx context.Context) ([]models.Receipt, error)
	Get(ctx context.Context, id string) (*models.Receipt, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Receipt, error)
	Generate(ctx context.Context, req service.ReceiptRequest) (*models.Receipt, error)
	Delete(ctx context.Context, id string) error
}

type receiptDocuments interface {
	ReceiptPDF(ctx context.Context, id string) (*service.Document, error)
}

// ReceiptHandler wires recuPaiement endpoints.
type ReceiptHandler struct {
	receipts  receiptService
	documents receiptDocuments
}

// NewReceiptHandler constructs a new ReceiptHandler.
func NewReceiptHandler(receipts receiptService, documents receiptDocuments) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts, documents: documents}
}

// List godoc
// @Summary List receipts
// @Tags RecuPaiements
// @Produce json
// @Success 200 {array} models.Receipt
// @Router /recuPaiements [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	receipts, err := h.receipts.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, receipts)
}

// Get godoc
// @Summary Get receipt detail
// @Tags RecuPaiements
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} models.Receipt
// @Router /recuPaiements/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	receipt, err := h.receipts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, receipt)
}

// ListByStudent godoc
// @Summary List a student's receipts
// @Tags RecuPaiements
// @Produce json
// @Param eleveId path string true "Student ID"
// @Success 200 {array} models.Receipt
// @Router /recuPaiements/eleve/{eleveId} [get]
func (h *ReceiptHandler) ListByStudent(c *gin.Context) {
	receipts, err := h.receipts.ListByStudent(c.Request.Context(), c.Param("eleveId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, receipts)
}

// Create godoc
// @Summary Generate a receipt and its payment
// @Tags RecuPaiements
// @Accept json
// @Produce json
// @Param payload body service.ReceiptRequest true "Receipt payload"
// @Success 201 {object} models.Receipt
// @Failure 400 {object} errors.Error
// @Router /recuPaiements [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req service.ReceiptRequest
	if !bindJSON(c, &req) {
		return
	}
	receipt, err := h.receipts.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, receipt)
}

// Delete godoc
// @Summary Delete receipt and its payment
// @Tags RecuPaiements
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.MessageBody
// @Router /recuPaiements/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	if err := h.receipts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Reçu de paiement supprimé avec succès")
}

// PDF godoc
// @Summary Download receipt as PDF
// @Tags RecuPaiements
// @Produce application/pdf
// @Param id path string true "Receipt ID"
// @Success 200 {file} file
// @Router /recuPaiements/{id}/pdf [get]
func (h *ReceiptHandler) PDF(c *gin.Context) {
	doc, err := h.documents.ReceiptPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, doc.Filename, doc.ContentType, doc.Data)
}
