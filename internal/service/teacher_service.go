package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const msgTeacherNotFound = "Professeur non trouvé"

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
}

// TeacherRequest is the full body accepted on create and update.
type TeacherRequest struct {
	Nom        string  `json:"nom" validate:"required"`
	Prenom     string  `json:"prenom" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	Telephone  string  `json:"telephone" validate:"required"`
	Diplome    string  `json:"diplome" validate:"required"`
	Specialite string  `json:"specialite" validate:"required"`
	Status     string  `json:"status" validate:"required,oneof=actif inactif"`
	Adresse    *string `json:"adresse"`
	Biographie *string `json:"biographie"`
}

// TeacherService orchestrates professeur operations.
type TeacherService struct {
	repo      teacherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, logger: logger}
}

// List returns every teacher.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list teachers", err)
	}
	return teachers, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load teacher", msgTeacherNotFound, err)
	}
	return teacher, nil
}

// Create registers a new teacher.
func (s *TeacherService) Create(ctx context.Context, req TeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	teacher := req.toModel()
	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, storageFailure(s.logger, "create teacher", err)
	}
	return teacher, nil
}

// Update replaces every field of an existing teacher.
func (s *TeacherService) Update(ctx context.Context, id string, req TeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	teacher := req.toModel()
	teacher.ID = id
	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, writeError(s.logger, "update teacher", msgTeacherNotFound, "", err)
	}
	return teacher, nil
}

// Delete removes a teacher with no sessions or payslips.
func (s *TeacherService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(s.logger, "delete teacher", msgTeacherNotFound, "Professeur encore lié à des programmations ou fiches de paie", err)
	}
	return nil
}

func (r TeacherRequest) toModel() *models.Teacher {
	return &models.Teacher{
		Nom:        strings.TrimSpace(r.Nom),
		Prenom:     strings.TrimSpace(r.Prenom),
		Email:      strings.TrimSpace(r.Email),
		Telephone:  strings.TrimSpace(r.Telephone),
		Diplome:    strings.TrimSpace(r.Diplome),
		Specialite: strings.TrimSpace(r.Specialite),
		Status:     r.Status,
		Adresse:    normalizeOptional(r.Adresse),
		Biographie: normalizeOptional(r.Biographie),
	}
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
