package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const courseColumns = "id, matiere, niveau, salaire_par_heure, description"

// CourseRepository persists cours.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course in creation order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := "SELECT " + courseColumns + " FROM cours ORDER BY created_at, id"
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID loads a course by id.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	query := "SELECT " + courseColumns + " FROM cours WHERE id = $1"
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// FindByIDs loads the courses whose id is in ids; unknown ids are skipped.
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Course, error) {
	courses := []models.Course{}
	if len(ids) == 0 {
		return courses, nil
	}
	query, args, err := sqlx.In("SELECT "+courseColumns+" FROM cours WHERE id IN (?) ORDER BY matiere, id", ids)
	if err != nil {
		return nil, fmt.Errorf("build course lookup: %w", err)
	}
	if err := r.db.SelectContext(ctx, &courses, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	return courses, nil
}

// ListByStudent returns the courses a student paid for or is enrolled in,
// each course once.
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Course, error) {
	const query = `SELECT c.id, c.matiere, c.niveau, c.salaire_par_heure, c.description FROM cours c
WHERE c.id IN (
	SELECT crp.cours_id FROM cours_recu_paiements crp
	JOIN recu_paiements rp ON rp.id = crp.recu_paiement_id
	WHERE rp.eleve_id = $1
	UNION
	SELECT p.cours_id FROM programmations p
	JOIN eleves_programmations ep ON ep.programmation_id = p.id
	WHERE ep.eleve_id = $1
)
ORDER BY c.matiere, c.id`
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query, studentID); err != nil {
		return nil, fmt.Errorf("list courses by student: %w", err)
	}
	return courses, nil
}

// Create inserts a course, assigning a fresh id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	course.ID = uuid.NewString()
	const query = `INSERT INTO cours (id, matiere, niveau, salaire_par_heure, description) VALUES (:id, :matiere, :niveau, :salaire_par_heure, :description)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return writeError("create course", err)
	}
	return nil
}

// Update replaces every field of an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE cours SET matiere = :matiere, niveau = :niveau, salaire_par_heure = :salaire_par_heure, description = :description WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		return writeError("update course", err)
	}
	return mustAffect(res)
}

// Delete removes a course not used by any session or receipt.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cours WHERE id = $1`, id)
	if err != nil {
		return deleteError("delete course", err)
	}
	return mustAffect(res)
}
