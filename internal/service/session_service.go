package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
)

const (
	msgSessionNotFound   = "Programmation non trouvée"
	msgSessionReferences = "Cours, professeur, salle ou élève inexistant"
	msgAlreadyEnrolled   = "L'élève est déjà inscrit à cette programmation"
	msgNotEnrolled       = "L'élève n'est pas inscrit à cette programmation"
)

type sessionRepository interface {
	List(ctx context.Context) ([]models.Session, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Session, error)
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Create(ctx context.Context, session *models.Session) error
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
	AddStudent(ctx context.Context, sessionID, studentID string) error
	RemoveStudent(ctx context.Context, sessionID, studentID string) error
}

type teacherLookup interface {
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
}

// SessionRequest is the full body accepted on create and update.
type SessionRequest struct {
	CourseID   string       `json:"coursId" validate:"required"`
	TeacherID  string       `json:"professeurId" validate:"required"`
	RoomID     string       `json:"salleId" validate:"required"`
	Date       *models.Date `json:"date" validate:"required"`
	Heure      string       `json:"heure" validate:"required,datetime=15:04"`
	Duree      int          `json:"duree" validate:"required,gt=0"`
	StudentIDs []string     `json:"elevesIds"`
}

// SessionService orchestrates programmation operations and enrollment.
type SessionService struct {
	repo      sessionRepository
	teachers  teacherLookup
	students  studentLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(repo sessionRepository, teachers teacherLookup, students studentLookup, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{repo: repo, teachers: teachers, students: students, validator: validate, logger: logger}
}

// List returns every session with its enrolled students.
func (s *SessionService) List(ctx context.Context) ([]models.Session, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list sessions", err)
	}
	return sessions, nil
}

// Get returns a session by id.
func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load session", msgSessionNotFound, err)
	}
	return session, nil
}

// ListByTeacher returns a teacher's sessions in chronological order.
func (s *SessionService) ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error) {
	if _, err := s.teachers.FindByID(ctx, teacherID); err != nil {
		return nil, lookupError(s.logger, "load teacher", msgTeacherNotFound, err)
	}
	sessions, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, storageFailure(s.logger, "list sessions by teacher", err)
	}
	return sessions, nil
}

// ListByStudent returns the sessions a student is enrolled in.
func (s *SessionService) ListByStudent(ctx context.Context, studentID string) ([]models.Session, error) {
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		return nil, lookupError(s.logger, "load student", msgStudentNotFound, err)
	}
	sessions, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storageFailure(s.logger, "list sessions by student", err)
	}
	return sessions, nil
}

// Create schedules a session and enrolls the listed students.
func (s *SessionService) Create(ctx context.Context, req SessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	session := req.toModel()
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, writeError(s.logger, "create session", msgSessionNotFound, msgSessionReferences, err)
	}
	return session, nil
}

// Update replaces a session and its enrollment list.
func (s *SessionService) Update(ctx context.Context, id string, req SessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	session := req.toModel()
	session.ID = id
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, writeError(s.logger, "update session", msgSessionNotFound, msgSessionReferences, err)
	}
	return session, nil
}

// Delete removes a session and its enrollments. Sessions already paid on a
// payslip are kept.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(s.logger, "delete session", msgSessionNotFound, "Programmation couverte par une fiche de paie", err)
	}
	return nil
}

// Enroll adds a student to a session.
func (s *SessionService) Enroll(ctx context.Context, sessionID, studentID string) error {
	if _, err := s.repo.FindByID(ctx, sessionID); err != nil {
		return lookupError(s.logger, "load session", msgSessionNotFound, err)
	}
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		return lookupError(s.logger, "load student", msgStudentNotFound, err)
	}
	if err := s.repo.AddStudent(ctx, sessionID, studentID); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return appErrors.Clone(appErrors.ErrAlreadyEnrolled, msgAlreadyEnrolled)
		case errors.Is(err, repository.ErrInvalidReference):
			return notFound(msgSessionNotFound)
		default:
			return storageFailure(s.logger, "enroll student", err)
		}
	}
	return nil
}

// Unenroll removes a student from a session.
func (s *SessionService) Unenroll(ctx context.Context, sessionID, studentID string) error {
	if err := s.repo.RemoveStudent(ctx, sessionID, studentID); err != nil {
		return lookupError(s.logger, "unenroll student", msgNotEnrolled, err)
	}
	return nil
}

func (r SessionRequest) toModel() *models.Session {
	return &models.Session{
		CourseID:   strings.TrimSpace(r.CourseID),
		TeacherID:  strings.TrimSpace(r.TeacherID),
		RoomID:     strings.TrimSpace(r.RoomID),
		Date:       *r.Date,
		Heure:      r.Heure,
		Duree:      r.Duree,
		StudentIDs: models.UniqueIDs(r.StudentIDs),
	}
}
