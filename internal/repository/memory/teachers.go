package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// TeacherRepository serves professeurs from a Store.
type TeacherRepository struct {
	store *Store
}

// NewTeacherRepository binds a teacher repository to store.
func NewTeacherRepository(store *Store) *TeacherRepository {
	return &TeacherRepository{store: store}
}

func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.teachers.all(), nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	teacher, ok := r.store.teachers.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &teacher, nil
}

func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	teacher.ID = uuid.NewString()
	r.store.teachers.put(teacher.ID, *teacher)
	r.store.persistLocked()
	return nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.teachers.has(teacher.ID) {
		return sql.ErrNoRows
	}
	r.store.teachers.put(teacher.ID, *teacher)
	r.store.persistLocked()
	return nil
}

// Delete refuses to remove a teacher who still has sessions or payslips.
func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.teachers.has(id) {
		return sql.ErrNoRows
	}
	if r.store.sessions.some(func(s models.Session) bool { return s.TeacherID == id }) ||
		r.store.payslips.some(func(p models.Payslip) bool { return p.TeacherID == id }) {
		return repository.ErrReferenced
	}
	r.store.teachers.remove(id)
	r.store.persistLocked()
	return nil
}
