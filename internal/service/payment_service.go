package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/pkg/export"
)

const msgPaymentNotFound = "Paiement non trouvé"

type paymentRepository interface {
	List(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

// PaymentRequest records a standalone payment.
type PaymentRequest struct {
	Montant   float64      `json:"montant" validate:"required,gt=0"`
	Date      *models.Date `json:"date" validate:"required"`
	Methode   string       `json:"methode" validate:"required"`
	Reference string       `json:"reference"`
}

// PaymentService orchestrates paiement operations. Payments are immutable.
type PaymentService struct {
	repo      paymentRepository
	csv       *export.CSVExporter
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(repo paymentRepository, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{repo: repo, csv: export.NewCSVExporter(), validator: validate, logger: logger, now: time.Now}
}

// List returns every payment.
func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list payments", err)
	}
	return payments, nil
}

// Get returns a payment by id.
func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load payment", msgPaymentNotFound, err)
	}
	return payment, nil
}

// Create records a payment, generating a reference when none was given.
func (s *PaymentService) Create(ctx context.Context, req PaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	payment := &models.Payment{
		Montant:   req.Montant,
		Date:      *req.Date,
		Methode:   strings.TrimSpace(req.Methode),
		Reference: referenceOrDefault(req.Reference, s.now()),
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, storageFailure(s.logger, "create payment", err)
	}
	return payment, nil
}

// ExportCSV renders every payment as CSV.
func (s *PaymentService) ExportCSV(ctx context.Context) ([]byte, error) {
	payments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	table := export.Table{Headers: []string{"id", "reference", "date", "methode", "montant"}}
	for _, p := range payments {
		table.Rows = append(table.Rows, []string{
			p.ID,
			p.Reference,
			p.Date.String(),
			p.Methode,
			strconv.FormatFloat(p.Montant, 'f', 2, 64),
		})
	}
	data, err := s.csv.Render(table)
	if err != nil {
		return nil, fmt.Errorf("render payments csv: %w", err)
	}
	return data, nil
}

// referenceOrDefault keeps a caller reference or derives REF-<unix millis>.
func referenceOrDefault(reference string, now time.Time) string {
	if trimmed := strings.TrimSpace(reference); trimmed != "" {
		return trimmed
	}
	return fmt.Sprintf("REF-%d", now.UnixMilli())
}
