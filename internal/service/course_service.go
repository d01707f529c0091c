package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const msgCourseNotFound = "Cours non trouvé"

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type studentLookup interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// CourseRequest is the full body accepted on create and update.
type CourseRequest struct {
	Matiere         string  `json:"matiere" validate:"required"`
	Niveau          string  `json:"niveau" validate:"required"`
	SalaireParHeure float64 `json:"salaireParHeure" validate:"required,gt=0"`
	Description     *string `json:"description"`
}

// CourseService orchestrates cours operations. The full list is cached.
type CourseService struct {
	repo      courseRepository
	students  studentLookup
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService. cache may be nil.
func NewCourseService(repo courseRepository, students studentLookup, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, students: students, cache: cache, validator: validate, logger: logger}
}

// List returns every course, serving from cache when possible.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	const key = cachePrefixCourses + "all"
	var cached []models.Course
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list courses", err)
	}
	s.cache.Set(ctx, key, courses)
	return courses, nil
}

// Get returns a course by id.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load course", msgCourseNotFound, err)
	}
	return course, nil
}

// ListByStudent returns the courses a student paid for or attends.
func (s *CourseService) ListByStudent(ctx context.Context, studentID string) ([]models.Course, error) {
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		return nil, lookupError(s.logger, "load student", msgStudentNotFound, err)
	}
	courses, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storageFailure(s.logger, "list courses by student", err)
	}
	return courses, nil
}

// Create registers a new course.
func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	course := req.toModel()
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, storageFailure(s.logger, "create course", err)
	}
	s.cache.Invalidate(ctx, cachePrefixCourses)
	return course, nil
}

// Update replaces every field of an existing course.
func (s *CourseService) Update(ctx context.Context, id string, req CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	course := req.toModel()
	course.ID = id
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, writeError(s.logger, "update course", msgCourseNotFound, "", err)
	}
	s.cache.Invalidate(ctx, cachePrefixCourses)
	return course, nil
}

// Delete removes a course no session or receipt refers to.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(s.logger, "delete course", msgCourseNotFound, "Cours encore lié à des programmations ou reçus", err)
	}
	s.cache.Invalidate(ctx, cachePrefixCourses)
	return nil
}

func (r CourseRequest) toModel() *models.Course {
	return &models.Course{
		Matiere:         strings.TrimSpace(r.Matiere),
		Niveau:          strings.TrimSpace(r.Niveau),
		SalaireParHeure: r.SalaireParHeure,
		Description:     normalizeOptional(r.Description),
	}
}
