package memory

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
	"github.com/noah-isme/soutien-scolaire-api/pkg/storage"
)

type fakeSnapshots struct {
	files map[string][]byte
	saves int
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{files: map[string][]byte{}}
}

func (f *fakeSnapshots) Save(name string, data []byte) error {
	f.files[name] = append([]byte(nil), data...)
	f.saves++
	return nil
}

func (f *fakeSnapshots) Load(name string) ([]byte, error) {
	data, ok := f.files[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

type fixture struct {
	store    *Store
	teachers *TeacherRepository
	students *StudentRepository
	courses  *CourseRepository
	rooms    *RoomRepository
	sessions *SessionRepository
	payments *PaymentRepository
	receipts *ReceiptRepository
	payslips *PayslipRepository
}

func newFixture(opts ...Option) fixture {
	store := NewStore(opts...)
	return fixture{
		store:    store,
		teachers: NewTeacherRepository(store),
		students: NewStudentRepository(store),
		courses:  NewCourseRepository(store),
		rooms:    NewRoomRepository(store),
		sessions: NewSessionRepository(store),
		payments: NewPaymentRepository(store),
		receipts: NewReceiptRepository(store),
		payslips: NewPayslipRepository(store),
	}
}

// seed creates one teacher, course, room, student and a session enrolling the student.
func (f fixture) seed(t *testing.T) (models.Teacher, models.Course, models.Room, models.Student, models.Session) {
	t.Helper()
	ctx := context.Background()
	teacher := models.Teacher{Nom: "Martin", Prenom: "Alice", Status: models.TeacherActive}
	require.NoError(t, f.teachers.Create(ctx, &teacher))
	course := models.Course{Matiere: "Maths", Niveau: "Terminale", SalaireParHeure: 500}
	require.NoError(t, f.courses.Create(ctx, &course))
	room := models.Room{Nom: "Salle A", Capacite: 12, Status: models.RoomAvailable}
	require.NoError(t, f.rooms.Create(ctx, &room))
	student := models.Student{Nom: "Durand", Prenom: "Léa", DateInscription: models.NewDate(2024, time.September, 2)}
	require.NoError(t, f.students.Create(ctx, &student))
	session := models.Session{CourseID: course.ID, TeacherID: teacher.ID, RoomID: room.ID, Date: models.NewDate(2024, time.March, 4), Heure: "09:00", Duree: 90, StudentIDs: []string{student.ID}}
	require.NoError(t, f.sessions.Create(ctx, &session))
	return teacher, course, room, student, session
}

func TestListKeepsInsertionOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, nom := range []string{"Zola", "Aubry", "Moreau"} {
		require.NoError(t, f.teachers.Create(ctx, &models.Teacher{Nom: nom}))
	}
	list, err := f.teachers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Zola", list[0].Nom)
	assert.Equal(t, "Aubry", list[1].Nom)
	assert.Equal(t, "Moreau", list[2].Nom)
}

func TestCreateIgnoresClientID(t *testing.T) {
	f := newFixture()
	room := models.Room{ID: "mine", Nom: "B"}
	require.NoError(t, f.rooms.Create(context.Background(), &room))
	assert.NotEqual(t, "mine", room.ID)

	_, err := f.rooms.FindByID(context.Background(), "mine")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpdateMissingReturnsNoRows(t *testing.T) {
	f := newFixture()
	err := f.courses.Update(context.Background(), &models.Course{ID: "ghost"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSessionReferencesAreChecked(t *testing.T) {
	f := newFixture()
	teacher, course, room, _, _ := f.seed(t)

	err := f.sessions.Create(context.Background(), &models.Session{CourseID: course.ID, TeacherID: teacher.ID, RoomID: room.ID, Duree: 60, StudentIDs: []string{"ghost"}})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)

	list, err := f.sessions.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEnrollmentIsUnique(t *testing.T) {
	f := newFixture()
	_, _, _, student, session := f.seed(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.sessions.AddStudent(ctx, session.ID, student.ID), repository.ErrDuplicate)
	require.NoError(t, f.sessions.RemoveStudent(ctx, session.ID, student.ID))
	assert.ErrorIs(t, f.sessions.RemoveStudent(ctx, session.ID, student.ID), sql.ErrNoRows)
	require.NoError(t, f.sessions.AddStudent(ctx, session.ID, student.ID))

	loaded, err := f.sessions.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{student.ID}, loaded.StudentIDs)
}

func TestDeletePolicy(t *testing.T) {
	f := newFixture()
	teacher, course, room, student, session := f.seed(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.rooms.Delete(ctx, room.ID), repository.ErrReferenced)
	assert.ErrorIs(t, f.courses.Delete(ctx, course.ID), repository.ErrReferenced)
	assert.ErrorIs(t, f.teachers.Delete(ctx, teacher.ID), repository.ErrReferenced)

	// deleting the student only drops the enrollment
	require.NoError(t, f.students.Delete(ctx, student.ID))
	loaded, err := f.sessions.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.StudentIDs)

	require.NoError(t, f.sessions.Delete(ctx, session.ID))
	require.NoError(t, f.rooms.Delete(ctx, room.ID))
	assert.ErrorIs(t, f.rooms.Delete(ctx, room.ID), sql.ErrNoRows)
}

func TestDeleteSessionDropsEnrollments(t *testing.T) {
	snaps := newFakeSnapshots()
	f := newFixture(WithSnapshot(snaps, "snapshot.json"))
	_, _, _, student, session := f.seed(t)
	ctx := context.Background()
	other := models.Student{Nom: "Moreau", Prenom: "Hugo", DateInscription: models.NewDate(2024, time.September, 3)}
	require.NoError(t, f.students.Create(ctx, &other))
	require.NoError(t, f.sessions.AddStudent(ctx, session.ID, other.ID))

	require.NoError(t, f.sessions.Delete(ctx, session.ID))

	for _, id := range []string{student.ID, other.ID} {
		enrolled, err := f.sessions.ListByStudent(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, enrolled)
	}
	assert.Empty(t, f.store.sessionStudents)

	reloaded := newFixture(WithSnapshot(snaps, "snapshot.json"))
	require.NoError(t, reloaded.store.Load())
	assert.Empty(t, reloaded.store.sessionStudents)
	_, err := reloaded.sessions.FindByID(ctx, session.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSessionCoveredByPayslipCannotBeDeleted(t *testing.T) {
	f := newFixture()
	teacher, _, _, _, session := f.seed(t)
	ctx := context.Background()

	payslip := models.Payslip{TeacherID: teacher.ID, TotalHeures: 1.5, TotalSalaire: 750, SessionIDs: []string{session.ID}}
	require.NoError(t, f.payslips.CreateWithPayment(ctx, &payslip, &models.Payment{Montant: 750, Methode: models.MethodTransfer, Reference: "PAIE-1"}))

	assert.ErrorIs(t, f.sessions.Delete(ctx, session.ID), repository.ErrReferenced)

	require.NoError(t, f.payslips.Delete(ctx, payslip.ID))
	_, err := f.payments.FindByID(ctx, payslip.PaymentID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, f.sessions.Delete(ctx, session.ID))
}

func TestReceiptCreateIsAllOrNothing(t *testing.T) {
	f := newFixture()
	_, course, _, student, _ := f.seed(t)
	ctx := context.Background()

	bad := models.Receipt{StudentID: student.ID, CourseIDs: []string{course.ID, "ghost"}}
	err := f.receipts.CreateWithPayment(ctx, &bad, &models.Payment{Montant: 100, Reference: "REF-1"})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)

	payments, err := f.payments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments, "no orphaned payment")

	good := models.Receipt{StudentID: student.ID, CourseIDs: []string{course.ID, course.ID}}
	require.NoError(t, f.receipts.CreateWithPayment(ctx, &good, &models.Payment{Montant: 100, Reference: "REF-1"}))
	assert.Equal(t, []string{course.ID}, good.CourseIDs)

	dup := models.Receipt{StudentID: student.ID, CourseIDs: []string{course.ID}}
	err = f.receipts.CreateWithPayment(ctx, &dup, &models.Payment{Montant: 100, Reference: "REF-1"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// a receipt blocks deleting its student and course
	assert.ErrorIs(t, f.students.Delete(ctx, student.ID), repository.ErrReferenced)

	require.NoError(t, f.receipts.Delete(ctx, good.ID))
	payments, err = f.payments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestCoursesByStudentUnion(t *testing.T) {
	f := newFixture()
	teacher, course, room, student, _ := f.seed(t)
	ctx := context.Background()

	physics := models.Course{Matiere: "Physique", Niveau: "Terminale"}
	require.NoError(t, f.courses.Create(ctx, &physics))
	english := models.Course{Matiere: "Anglais", Niveau: "Terminale"}
	require.NoError(t, f.courses.Create(ctx, &english))

	// enrolled in maths, paid maths and physics
	receipt := models.Receipt{StudentID: student.ID, CourseIDs: []string{course.ID, physics.ID}}
	require.NoError(t, f.receipts.CreateWithPayment(ctx, &receipt, &models.Payment{Reference: "REF-9"}))
	require.NoError(t, f.sessions.Create(ctx, &models.Session{CourseID: english.ID, TeacherID: teacher.ID, RoomID: room.ID, Duree: 60}))

	courses, err := f.courses.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Maths", courses[0].Matiere)
	assert.Equal(t, "Physique", courses[1].Matiere)
}

func TestListByTeacherInRangeIncludesBounds(t *testing.T) {
	f := newFixture()
	teacher, course, room, _, _ := f.seed(t)
	ctx := context.Background()

	for _, d := range []models.Date{
		models.NewDate(2024, time.February, 29),
		models.NewDate(2024, time.March, 1),
		models.NewDate(2024, time.March, 31),
		models.NewDate(2024, time.April, 1),
	} {
		require.NoError(t, f.sessions.Create(ctx, &models.Session{CourseID: course.ID, TeacherID: teacher.ID, RoomID: room.ID, Date: d, Heure: "10:00", Duree: 60}))
	}

	from, to := models.MonthRange(2024, time.March)
	sessions, err := f.sessions.ListByTeacherInRange(ctx, models.SessionRange{TeacherID: teacher.ID, From: from, To: to})
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "2024-03-01", sessions[0].Date.String())
	assert.Equal(t, "2024-03-04", sessions[1].Date.String())
	assert.Equal(t, "2024-03-31", sessions[2].Date.String())
}

func TestSnapshotRoundTrip(t *testing.T) {
	snaps := newFakeSnapshots()
	f := newFixture(WithSnapshot(snaps, "snapshot.json"))
	_, course, _, student, session := f.seed(t)
	ctx := context.Background()
	receipt := models.Receipt{StudentID: student.ID, CourseIDs: []string{course.ID}, Date: models.NewDate(2024, time.March, 10)}
	require.NoError(t, f.receipts.CreateWithPayment(ctx, &receipt, &models.Payment{Montant: 80, Reference: "REF-2"}))
	assert.Greater(t, snaps.saves, 0)

	reloaded := newFixture(WithSnapshot(snaps, "snapshot.json"))
	require.NoError(t, reloaded.store.Load())

	got, err := reloaded.sessions.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{student.ID}, got.StudentIDs)
	assert.Equal(t, "2024-03-04", got.Date.String())

	gotReceipt, err := reloaded.receipts.FindByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{course.ID}, gotReceipt.CourseIDs)
	assert.Equal(t, receipt.PaymentID, gotReceipt.PaymentID)

	pay, err := reloaded.payments.FindByID(ctx, receipt.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, "REF-2", pay.Reference)
}

func TestLoadWithoutSnapshotIsEmpty(t *testing.T) {
	f := newFixture(WithSnapshot(newFakeSnapshots(), "missing.json"))
	require.NoError(t, f.store.Load())
	list, err := f.students.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
