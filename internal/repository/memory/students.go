package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// StudentRepository serves eleves from a Store.
type StudentRepository struct {
	store *Store
}

// NewStudentRepository binds a student repository to store.
func NewStudentRepository(store *Store) *StudentRepository {
	return &StudentRepository{store: store}
}

func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.students.all(), nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	student, ok := r.store.students.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &student, nil
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	student.ID = uuid.NewString()
	r.store.students.put(student.ID, *student)
	r.store.persistLocked()
	return nil
}

func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.students.has(student.ID) {
		return sql.ErrNoRows
	}
	r.store.students.put(student.ID, *student)
	r.store.persistLocked()
	return nil
}

// Delete drops the student's enrollments with them; receipts block it.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.students.has(id) {
		return sql.ErrNoRows
	}
	if r.store.receipts.some(func(rc models.Receipt) bool { return rc.StudentID == id }) {
		return repository.ErrReferenced
	}
	r.store.sessionStudents.dropChild(id)
	r.store.students.remove(id)
	r.store.persistLocked()
	return nil
}
