package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

var sessionRowColumns = []string{"id", "cours_id", "professeur_id", "salle_id", "date", "heure", "duree"}

func TestSessionRepositoryListAttachesStudents(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + sessionColumns + " FROM programmations ORDER BY created_at, id")).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).
			AddRow("p1", "c1", "t1", "s1", day, "09:00", 90).
			AddRow("p2", "c1", "t1", "s1", day, "14:00", 60))
	mock.ExpectQuery("FROM eleves_programmations WHERE programmation_id = ANY").
		WillReturnRows(sqlmock.NewRows([]string{"parent_id", "child_id"}).AddRow("p1", "e1"))

	sessions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, []string{"e1"}, sessions[0].StudentIDs)
	assert.Equal(t, []string{}, sessions[1].StudentIDs)
	assert.Equal(t, "2024-03-04", sessions[0].Date.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryListByTeacherInRange(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	from, to := models.MonthRange(2024, time.March)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE professeur_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date, heure, id")).
		WithArgs("t1", "2024-03-01", "2024-03-31").
		WillReturnRows(sqlmock.NewRows(sessionRowColumns))

	sessions, err := repo.ListByTeacherInRange(context.Background(), models.SessionRange{TeacherID: "t1", From: from, To: to})
	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryCreateCommitsOnce(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO programmations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO eleves_programmations (programmation_id, eleve_id) SELECT $1, unnest($2::text[])")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	session := &models.Session{CourseID: "c1", TeacherID: "t1", RoomID: "s1", Date: models.NewDate(2024, 3, 4), Heure: "09:00", Duree: 90, StudentIDs: []string{"e1", "e2", "e1"}}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, []string{"e1", "e2"}, session.StudentIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryCreateUnknownStudentRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO programmations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO eleves_programmations").
		WillReturnError(&pq.Error{Code: pqForeignKeyViolation, Message: "eleves_programmations_eleve_id_fkey"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Session{CourseID: "c1", TeacherID: "t1", RoomID: "s1", Duree: 60, StudentIDs: []string{"ghost"}})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryUpdateReplacesLinks(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE programmations SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM eleves_programmations WHERE programmation_id = $1")).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &models.Session{ID: "p1", CourseID: "c1", TeacherID: "t1", RoomID: "s1", Duree: 60})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryDeleteCoveredByPayslip(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM eleves_programmations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM programmations WHERE id = $1")).
		WillReturnError(&pq.Error{Code: pqForeignKeyViolation, Message: "programmations_fiche_paies_programmation_id_fkey"})
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryEnrollment(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectExec("INSERT INTO eleves_programmations").
		WithArgs("p1", "e1").
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Message: "duplicate key"})
	assert.ErrorIs(t, repo.AddStudent(context.Background(), "p1", "e1"), ErrDuplicate)

	mock.ExpectExec("DELETE FROM eleves_programmations WHERE programmation_id").
		WithArgs("p1", "e9").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.RemoveStudent(context.Background(), "p1", "e9"), sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
