package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
	"github.com/noah-isme/soutien-scolaire-api/pkg/response"
)

type paymentService interface {
	List(ctx context.Context) ([]models.Payment, error)
	Get(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, req service.PaymentRequest) (*models.Payment, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// PaymentHandler wires paiement endpoints.
type PaymentHandler struct {
	payments paymentService
}

// NewPaymentHandler constructs a new PaymentHandler.
func NewPaymentHandler(payments paymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// List godoc
// @Summary List payments
// @Tags Paiements
// @Produce json
// @Success 200 {array} models.Payment
// @Router /paiements [get]
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments)
}

// Get godoc
// @Summary Get payment detail
// @Tags Paiements
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} models.Payment
// @Router /paiements/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.payments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payment)
}

// Create godoc
// @Summary Record a payment
// @Tags Paiements
// @Accept json
// @Produce json
// @Param payload body service.PaymentRequest true "Payment payload"
// @Success 201 {object} models.Payment
// @Router /paiements [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.payments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}

// Export godoc
// @Summary Export payments as CSV
// @Tags Paiements
// @Produce text/csv
// @Success 200 {file} file
// @Router /paiements/export [get]
func (h *PaymentHandler) Export(c *gin.Context) {
	data, err := h.payments.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, "paiements.csv", "text/csv; charset=utf-8", data)
}
