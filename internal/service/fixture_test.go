package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository/memory"
	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	teachers *memory.TeacherRepository
	students *memory.StudentRepository
	courses  *memory.CourseRepository
	rooms    *memory.RoomRepository
	sessions *memory.SessionRepository
	payments *memory.PaymentRepository
	receipts *memory.ReceiptRepository
	payslips *memory.PayslipRepository
	metrics  *MetricsService
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:    store,
		teachers: memory.NewTeacherRepository(store),
		students: memory.NewStudentRepository(store),
		courses:  memory.NewCourseRepository(store),
		rooms:    memory.NewRoomRepository(store),
		sessions: memory.NewSessionRepository(store),
		payments: memory.NewPaymentRepository(store),
		receipts: memory.NewReceiptRepository(store),
		payslips: memory.NewPayslipRepository(store),
		metrics:  NewMetricsService(),
	}
}

func (f *fixture) teacher(t *testing.T, nom string) models.Teacher {
	t.Helper()
	teacher := models.Teacher{Nom: nom, Prenom: "Marie", Email: "marie@example.com", Telephone: "0600000000", Diplome: "Master", Specialite: "Maths", Status: models.TeacherActive}
	require.NoError(t, f.teachers.Create(context.Background(), &teacher))
	return teacher
}

func (f *fixture) student(t *testing.T, nom string) models.Student {
	t.Helper()
	student := models.Student{Nom: nom, Prenom: "Léo", Email: "leo@example.com", Telephone: "0611111111", Niveau: "3ème", TelParents: "0622222222", DateInscription: models.NewDate(2023, time.September, 4)}
	require.NoError(t, f.students.Create(context.Background(), &student))
	return student
}

func (f *fixture) course(t *testing.T, matiere string, rate float64) models.Course {
	t.Helper()
	course := models.Course{Matiere: matiere, Niveau: "3ème", SalaireParHeure: rate}
	require.NoError(t, f.courses.Create(context.Background(), &course))
	return course
}

func (f *fixture) room(t *testing.T) models.Room {
	t.Helper()
	room := models.Room{Nom: "Salle A", Capacite: 12, Status: models.RoomAvailable}
	require.NoError(t, f.rooms.Create(context.Background(), &room))
	return room
}

func (f *fixture) session(t *testing.T, course models.Course, teacher models.Teacher, room models.Room, date models.Date, heure string, duree int, students ...string) models.Session {
	t.Helper()
	session := models.Session{CourseID: course.ID, TeacherID: teacher.ID, RoomID: room.ID, Date: date, Heure: heure, Duree: duree, StudentIDs: students}
	require.NoError(t, f.sessions.Create(context.Background(), &session))
	return session
}

func datePtr(year int, month time.Month, day int) *models.Date {
	d := models.NewDate(year, month, day)
	return &d
}

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	require.Equal(t, status, appErr.Status)
	if message != "" {
		require.Equal(t, message, appErr.Message)
	}
}
