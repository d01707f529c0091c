package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const msgStudentNotFound = "Élève non trouvé"

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentRequest is the full body accepted on create and update.
type StudentRequest struct {
	Nom             string       `json:"nom" validate:"required"`
	Prenom          string       `json:"prenom" validate:"required"`
	Email           string       `json:"email" validate:"required"`
	Telephone       string       `json:"telephone" validate:"required"`
	Niveau          string       `json:"niveau" validate:"required"`
	TelParents      string       `json:"telParents" validate:"required"`
	DateInscription *models.Date `json:"dateInscription" validate:"required"`
	Adresse         *string      `json:"adresse"`
	Notes           *string      `json:"notes"`
}

// StudentService orchestrates eleve operations.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns every student.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list students", err)
	}
	return students, nil
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load student", msgStudentNotFound, err)
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	student := req.toModel()
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, storageFailure(s.logger, "create student", err)
	}
	return student, nil
}

// Update replaces every field of an existing student.
func (s *StudentService) Update(ctx context.Context, id string, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	student := req.toModel()
	student.ID = id
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, writeError(s.logger, "update student", msgStudentNotFound, "", err)
	}
	return student, nil
}

// Delete removes a student and their enrollments. Students holding receipts
// are kept.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(s.logger, "delete student", msgStudentNotFound, "Élève encore lié à des reçus de paiement", err)
	}
	return nil
}

func (r StudentRequest) toModel() *models.Student {
	return &models.Student{
		Nom:             strings.TrimSpace(r.Nom),
		Prenom:          strings.TrimSpace(r.Prenom),
		Email:           strings.TrimSpace(r.Email),
		Telephone:       strings.TrimSpace(r.Telephone),
		Niveau:          strings.TrimSpace(r.Niveau),
		TelParents:      strings.TrimSpace(r.TelParents),
		DateInscription: *r.DateInscription,
		Adresse:         normalizeOptional(r.Adresse),
		Notes:           normalizeOptional(r.Notes),
	}
}
