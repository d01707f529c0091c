package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const (
	msgReceiptNotFound   = "Reçu de paiement non trouvé"
	msgReceiptReferences = "Élève ou cours inexistant"
)

type receiptRepository interface {
	List(ctx context.Context) ([]models.Receipt, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Receipt, error)
	FindByID(ctx context.Context, id string) (*models.Receipt, error)
	CreateWithPayment(ctx context.Context, receipt *models.Receipt, payment *models.Payment) error
	Delete(ctx context.Context, id string) error
}

// ReceiptRequest pays for a set of courses on behalf of a student.
type ReceiptRequest struct {
	StudentID string       `json:"eleveId" validate:"required"`
	CourseIDs []string     `json:"coursIds" validate:"required,min=1"`
	Montant   float64      `json:"montant" validate:"required,gt=0"`
	Methode   string       `json:"methode" validate:"required"`
	Reference string       `json:"reference"`
	Date      *models.Date `json:"date" validate:"required"`
}

// ReceiptService generates and serves recuPaiements.
type ReceiptService struct {
	repo      receiptRepository
	students  studentLookup
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewReceiptService constructs a ReceiptService. metrics may be nil.
func NewReceiptService(repo receiptRepository, students studentLookup, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ReceiptService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptService{repo: repo, students: students, metrics: metrics, validator: validate, logger: logger, now: time.Now}
}

// List returns every receipt with its courses.
func (s *ReceiptService) List(ctx context.Context) ([]models.Receipt, error) {
	receipts, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list receipts", err)
	}
	return receipts, nil
}

// Get returns a receipt by id.
func (s *ReceiptService) Get(ctx context.Context, id string) (*models.Receipt, error) {
	receipt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load receipt", msgReceiptNotFound, err)
	}
	return receipt, nil
}

// ListByStudent returns the receipts issued to a student.
func (s *ReceiptService) ListByStudent(ctx context.Context, studentID string) ([]models.Receipt, error) {
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		return nil, lookupError(s.logger, "load student", msgStudentNotFound, err)
	}
	receipts, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storageFailure(s.logger, "list receipts by student", err)
	}
	return receipts, nil
}

// Generate writes the payment, the receipt and its course links as one unit.
func (s *ReceiptService) Generate(ctx context.Context, req ReceiptRequest) (*models.Receipt, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	courseIDs := models.UniqueIDs(req.CourseIDs)
	if len(courseIDs) == 0 {
		return nil, invalid(msgMissingFields)
	}

	payment := &models.Payment{
		Montant:   req.Montant,
		Date:      *req.Date,
		Methode:   req.Methode,
		Reference: referenceOrDefault(req.Reference, s.now()),
	}
	receipt := &models.Receipt{
		StudentID: req.StudentID,
		CourseIDs: courseIDs,
		Date:      *req.Date,
	}

	start := time.Now()
	err := s.repo.CreateWithPayment(ctx, receipt, payment)
	s.metrics.ObserveDBQuery("receipt_generate", time.Since(start))
	if err != nil {
		return nil, writeError(s.logger, "generate receipt", msgReceiptNotFound, msgReceiptReferences, err)
	}

	s.metrics.RecordDocument(DocumentReceipt)
	s.logger.Info("receipt generated",
		zap.String("receipt_id", receipt.ID),
		zap.String("payment_id", payment.ID),
		zap.String("student_id", receipt.StudentID),
		zap.Float64("montant", payment.Montant),
	)
	return receipt, nil
}

// Delete removes a receipt, its course links and its payment.
func (s *ReceiptService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(s.logger, "delete receipt", msgReceiptNotFound, "", err)
	}
	return nil
}
