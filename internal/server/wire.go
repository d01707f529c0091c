package server

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/handler"
	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
)

// TeacherStore persists professeurs.
type TeacherStore interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
}

// StudentStore persists eleves.
type StudentStore interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// CourseStore persists cours.
type CourseStore interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Course, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

// RoomStore persists salles.
type RoomStore interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id string) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
}

// SessionStore persists programmations and their enrollments.
type SessionStore interface {
	List(ctx context.Context) ([]models.Session, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Session, error)
	ListByTeacherInRange(ctx context.Context, rng models.SessionRange) ([]models.Session, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Session, error)
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Create(ctx context.Context, session *models.Session) error
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
	AddStudent(ctx context.Context, sessionID, studentID string) error
	RemoveStudent(ctx context.Context, sessionID, studentID string) error
}

// PaymentStore persists paiements.
type PaymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

// ReceiptStore persists recuPaiements with their payment.
type ReceiptStore interface {
	List(ctx context.Context) ([]models.Receipt, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Receipt, error)
	FindByID(ctx context.Context, id string) (*models.Receipt, error)
	CreateWithPayment(ctx context.Context, receipt *models.Receipt, payment *models.Payment) error
	Delete(ctx context.Context, id string) error
}

// PayslipStore persists fichePaies with their payment.
type PayslipStore interface {
	List(ctx context.Context) ([]models.Payslip, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Payslip, error)
	FindByID(ctx context.Context, id string) (*models.Payslip, error)
	CreateWithPayment(ctx context.Context, payslip *models.Payslip, payment *models.Payment) error
	Delete(ctx context.Context, id string) error
}

// Repositories is one backend's full set of stores.
type Repositories struct {
	Teachers TeacherStore
	Students StudentStore
	Courses  CourseStore
	Rooms    RoomStore
	Sessions SessionStore
	Payments PaymentStore
	Receipts ReceiptStore
	Payslips PayslipStore
}

// Dependencies are the shared collaborators of every service.
type Dependencies struct {
	Repos             Repositories
	Cache             *service.CacheService
	Metrics           *service.MetricsService
	Validator         *validator.Validate
	Logger            *zap.Logger
	OrgName           string
	DefaultHourlyRate float64
	Checks            map[string]handler.Pinger
}

// NewHandlers builds the services over deps.Repos and the handlers over those.
func NewHandlers(deps Dependencies) Handlers {
	repos := deps.Repos
	validate := deps.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	teachers := service.NewTeacherService(repos.Teachers, validate, logger)
	students := service.NewStudentService(repos.Students, validate, logger)
	courses := service.NewCourseService(repos.Courses, repos.Students, deps.Cache, validate, logger)
	rooms := service.NewRoomService(repos.Rooms, deps.Cache, validate, logger)
	sessions := service.NewSessionService(repos.Sessions, repos.Teachers, repos.Students, validate, logger)
	payments := service.NewPaymentService(repos.Payments, validate, logger)
	receipts := service.NewReceiptService(repos.Receipts, repos.Students, deps.Metrics, validate, logger)
	payroll := service.NewPayrollService(repos.Payslips, repos.Teachers, repos.Sessions, repos.Courses, deps.Metrics, deps.DefaultHourlyRate, validate, logger)
	documents := service.NewDocumentService(service.DocumentRepositories{
		Receipts: repos.Receipts,
		Payslips: repos.Payslips,
		Payments: repos.Payments,
		Students: repos.Students,
		Teachers: repos.Teachers,
		Courses:  repos.Courses,
		Sessions: repos.Sessions,
	}, deps.OrgName, logger)

	return Handlers{
		Teachers: handler.NewTeacherHandler(teachers),
		Students: handler.NewStudentHandler(students, sessions),
		Courses:  handler.NewCourseHandler(courses),
		Rooms:    handler.NewRoomHandler(rooms),
		Sessions: handler.NewSessionHandler(sessions),
		Payments: handler.NewPaymentHandler(payments),
		Receipts: handler.NewReceiptHandler(receipts, documents),
		Payslips: handler.NewPayslipHandler(payroll, documents),
		Metrics:  handler.NewMetricsHandler(deps.Metrics, deps.Checks),
	}
}
