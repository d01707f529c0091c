package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const teacherColumns = "id, nom, prenom, email, telephone, diplome, specialite, status, adresse, biographie"

// TeacherRepository persists professeurs.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository creates a new teacher repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns every teacher in creation order.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	query := "SELECT " + teacherColumns + " FROM professeurs ORDER BY created_at, id"
	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID loads a teacher by id.
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	query := "SELECT " + teacherColumns + " FROM professeurs WHERE id = $1"
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a teacher, assigning a fresh id.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	teacher.ID = uuid.NewString()
	const query = `INSERT INTO professeurs (id, nom, prenom, email, telephone, diplome, specialite, status, adresse, biographie) VALUES (:id, :nom, :prenom, :email, :telephone, :diplome, :specialite, :status, :adresse, :biographie)`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return writeError("create teacher", err)
	}
	return nil
}

// Update replaces every field of an existing teacher.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE professeurs SET nom = :nom, prenom = :prenom, email = :email, telephone = :telephone, diplome = :diplome, specialite = :specialite, status = :status, adresse = :adresse, biographie = :biographie WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, teacher)
	if err != nil {
		return writeError("update teacher", err)
	}
	return mustAffect(res)
}

// Delete removes a teacher. Sessions or payslips still pointing at the
// teacher make it fail with ErrReferenced.
func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM professeurs WHERE id = $1`, id)
	if err != nil {
		return deleteError("delete teacher", err)
	}
	return mustAffect(res)
}
