package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const studentColumns = "id, nom, prenom, email, telephone, niveau, tel_parents, date_inscription, adresse, notes"

// StudentRepository persists eleves.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student in creation order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query := "SELECT " + studentColumns + " FROM eleves ORDER BY created_at, id"
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID loads a student by id.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := "SELECT " + studentColumns + " FROM eleves WHERE id = $1"
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a student, assigning a fresh id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ID = uuid.NewString()
	const query = `INSERT INTO eleves (id, nom, prenom, email, telephone, niveau, tel_parents, date_inscription, adresse, notes) VALUES (:id, :nom, :prenom, :email, :telephone, :niveau, :tel_parents, :date_inscription, :adresse, :notes)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return writeError("create student", err)
	}
	return nil
}

// Update replaces every field of an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE eleves SET nom = :nom, prenom = :prenom, email = :email, telephone = :telephone, niveau = :niveau, tel_parents = :tel_parents, date_inscription = :date_inscription, adresse = :adresse, notes = :notes WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return writeError("update student", err)
	}
	return mustAffect(res)
}

// Delete removes a student together with their enrollments. Receipts issued
// to the student make it fail with ErrReferenced and nothing is removed.
func (r *StudentRepository) Delete(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete student: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = sessionStudents.deleteChildLinks(ctx, tx, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM eleves WHERE id = $1`, id)
	if err != nil {
		return deleteError("delete student", err)
	}
	if err = mustAffect(res); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete student: %w", err)
	}
	return nil
}
