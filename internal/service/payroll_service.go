package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
)

const (
	msgPayslipNotFound   = "Fiche de paie non trouvée"
	msgNoSessionsInMonth = "Aucune programmation trouvée pour ce mois"
	msgMonthRequired     = "Le mois et l'année sont requis"
	msgMonthOutOfRange   = "Le mois doit être compris entre 1 et 12"
	msgPayslipReferences = "Professeur ou programmation inexistant"

	defaultHourlyRate = 25
)

type payslipRepository interface {
	List(ctx context.Context) ([]models.Payslip, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Payslip, error)
	FindByID(ctx context.Context, id string) (*models.Payslip, error)
	CreateWithPayment(ctx context.Context, payslip *models.Payslip, payment *models.Payment) error
	Delete(ctx context.Context, id string) error
}

type sessionRangeLister interface {
	ListByTeacherInRange(ctx context.Context, rng models.SessionRange) ([]models.Session, error)
}

type courseLookup interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

// GeneratePayslipRequest selects the month to pay.
type GeneratePayslipRequest struct {
	Mois  int `json:"mois" validate:"required"`
	Annee int `json:"annee" validate:"required"`
}

// PayslipRequest creates a payslip from precomputed totals.
type PayslipRequest struct {
	TeacherID    string       `json:"professeurId" validate:"required"`
	TotalHeures  float64      `json:"totalHeures" validate:"required,gt=0"`
	TotalSalaire float64      `json:"totalSalaire" validate:"required,gt=0"`
	Date         *models.Date `json:"date" validate:"required"`
	SessionIDs   []string     `json:"programmationIds" validate:"required,min=1"`
}

// PayrollService generates and serves fichePaies.
type PayrollService struct {
	repo        payslipRepository
	teachers    teacherLookup
	sessions    sessionRangeLister
	courses     courseLookup
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
	defaultRate float64
	now         func() time.Time
}

// NewPayrollService constructs a PayrollService. defaultRate is used when the
// course of a month's first session no longer exists.
func NewPayrollService(repo payslipRepository, teachers teacherLookup, sessions sessionRangeLister, courses courseLookup, metrics *MetricsService, defaultRate float64, validate *validator.Validate, logger *zap.Logger) *PayrollService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultRate <= 0 {
		defaultRate = defaultHourlyRate
	}
	return &PayrollService{
		repo:        repo,
		teachers:    teachers,
		sessions:    sessions,
		courses:     courses,
		metrics:     metrics,
		validator:   validate,
		logger:      logger,
		defaultRate: defaultRate,
		now:         time.Now,
	}
}

// List returns every payslip with its sessions.
func (s *PayrollService) List(ctx context.Context) ([]models.Payslip, error) {
	payslips, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list payslips", err)
	}
	return payslips, nil
}

// Get returns a payslip by id.
func (s *PayrollService) Get(ctx context.Context, id string) (*models.Payslip, error) {
	payslip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load payslip", msgPayslipNotFound, err)
	}
	return payslip, nil
}

// ListByTeacher returns the payslips of a teacher.
func (s *PayrollService) ListByTeacher(ctx context.Context, teacherID string) ([]models.Payslip, error) {
	if _, err := s.teachers.FindByID(ctx, teacherID); err != nil {
		return nil, lookupError(s.logger, "load teacher", msgTeacherNotFound, err)
	}
	payslips, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, storageFailure(s.logger, "list payslips by teacher", err)
	}
	return payslips, nil
}

// Generate pays a teacher for every session dated within the given month.
// All hours are paid at the rate of the first session's course.
func (s *PayrollService) Generate(ctx context.Context, teacherID string, req GeneratePayslipRequest) (*models.Payslip, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgMonthRequired)
	}
	if req.Mois < 1 || req.Mois > 12 {
		return nil, invalid(msgMonthOutOfRange)
	}

	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		return nil, lookupError(s.logger, "load teacher", msgTeacherNotFound, err)
	}

	from, to := models.MonthRange(req.Annee, time.Month(req.Mois))
	start := time.Now()
	sessions, err := s.sessions.ListByTeacherInRange(ctx, models.SessionRange{TeacherID: teacherID, From: from, To: to})
	s.metrics.ObserveDBQuery("payroll_sessions_in_month", time.Since(start))
	if err != nil {
		return nil, storageFailure(s.logger, "list sessions in month", err)
	}
	if len(sessions) == 0 {
		return nil, notFound(msgNoSessionsInMonth)
	}

	rate, err := s.hourlyRate(ctx, sessions[0].CourseID)
	if err != nil {
		return nil, err
	}

	var hours float64
	ids := make([]string, 0, len(sessions))
	for _, session := range sessions {
		hours += session.Hours()
		ids = append(ids, session.ID)
	}

	now := s.now()
	today := models.DateOf(now)
	payslip := &models.Payslip{
		TeacherID:    teacherID,
		TotalHeures:  hours,
		TotalSalaire: hours * rate,
		Date:         today,
		SessionIDs:   ids,
	}
	payment := &models.Payment{
		Montant:   payslip.TotalSalaire,
		Date:      today,
		Methode:   models.MethodTransfer,
		Reference: fmt.Sprintf("PAIE-%s-%02d%04d-%d", strings.ToUpper(teacher.Nom), req.Mois, req.Annee, now.UnixMilli()),
	}
	if err := s.store(ctx, payslip, payment); err != nil {
		return nil, err
	}
	s.logger.Info("payslip generated",
		zap.String("payslip_id", payslip.ID),
		zap.String("teacher_id", teacherID),
		zap.Int("mois", req.Mois),
		zap.Int("annee", req.Annee),
		zap.Int("sessions", len(ids)),
		zap.Float64("total_heures", hours),
		zap.Float64("total_salaire", payslip.TotalSalaire),
	)
	return payslip, nil
}

// Create records a payslip from totals supplied by the caller.
func (s *PayrollService) Create(ctx context.Context, req PayslipRequest) (*models.Payslip, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	now := s.now()
	payslip := &models.Payslip{
		TeacherID:    req.TeacherID,
		TotalHeures:  req.TotalHeures,
		TotalSalaire: req.TotalSalaire,
		Date:         *req.Date,
		SessionIDs:   models.UniqueIDs(req.SessionIDs),
	}
	payment := &models.Payment{
		Montant:   req.TotalSalaire,
		Date:      *req.Date,
		Methode:   models.MethodTransfer,
		Reference: fmt.Sprintf("PAIE-%s-%d", req.TeacherID, now.UnixMilli()),
	}
	if err := s.store(ctx, payslip, payment); err != nil {
		return nil, err
	}
	return payslip, nil
}

// Delete removes a payslip, its session links and its payment.
func (s *PayrollService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(s.logger, "delete payslip", msgPayslipNotFound, "", err)
	}
	return nil
}

func (s *PayrollService) store(ctx context.Context, payslip *models.Payslip, payment *models.Payment) error {
	start := time.Now()
	err := s.repo.CreateWithPayment(ctx, payslip, payment)
	s.metrics.ObserveDBQuery("payslip_create", time.Since(start))
	if err != nil {
		return writeError(s.logger, "create payslip", msgPayslipNotFound, msgPayslipReferences, err)
	}
	s.metrics.RecordDocument(DocumentPayslip)
	return nil
}

func (s *PayrollService) hourlyRate(ctx context.Context, courseID string) (float64, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("course missing, using default hourly rate", zap.String("course_id", courseID), zap.Float64("rate", s.defaultRate))
			return s.defaultRate, nil
		}
		return 0, storageFailure(s.logger, "load course", err)
	}
	return course.SalaireParHeure, nil
}
