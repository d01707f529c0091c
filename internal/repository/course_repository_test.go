package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepositoryListByStudentUnion(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(`(?s)FROM cours_recu_paiements.*UNION.*FROM programmations`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "matiere", "niveau", "salaire_par_heure", "description"}).
			AddRow("c1", "Maths", "Terminale", 500.0, nil).
			AddRow("c2", "Physique", "Terminale", 450.0, "Mécanique"))

	courses, err := repo.ListByStudent(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, 500.0, courses[0].SalaireParHeure)
	require.NotNil(t, courses[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryFindByIDsSkipsEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	courses, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRoomRepository(db)

	mock.ExpectExec("DELETE FROM salles WHERE id").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Error(t, repo.Delete(context.Background(), "ghost"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
