package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// CourseRepository serves cours from a Store.
type CourseRepository struct {
	store *Store
}

// NewCourseRepository binds a course repository to store.
func NewCourseRepository(store *Store) *CourseRepository {
	return &CourseRepository{store: store}
}

func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.courses.all(), nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	course, ok := r.store.courses.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &course, nil
}

func (r *CourseRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	courses := make([]models.Course, 0, len(ids))
	for _, id := range models.UniqueIDs(ids) {
		if course, ok := r.store.courses.get(id); ok {
			courses = append(courses, course)
		}
	}
	sortCourses(courses)
	return courses, nil
}

// ListByStudent unions the courses on the student's receipts with the
// courses of the sessions they attend.
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make(map[string]struct{})
	for _, rc := range r.store.receipts.filter(func(rc models.Receipt) bool { return rc.StudentID == studentID }) {
		for _, courseID := range r.store.receiptCourses.children(rc.ID) {
			ids[courseID] = struct{}{}
		}
	}
	for _, s := range r.store.sessions.all() {
		if r.store.sessionStudents.has(s.ID, studentID) {
			ids[s.CourseID] = struct{}{}
		}
	}

	courses := make([]models.Course, 0, len(ids))
	for id := range ids {
		if course, ok := r.store.courses.get(id); ok {
			courses = append(courses, course)
		}
	}
	sortCourses(courses)
	return courses, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	course.ID = uuid.NewString()
	r.store.courses.put(course.ID, *course)
	r.store.persistLocked()
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.courses.has(course.ID) {
		return sql.ErrNoRows
	}
	r.store.courses.put(course.ID, *course)
	r.store.persistLocked()
	return nil
}

// Delete refuses to remove a course used by a session or a receipt.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.courses.has(id) {
		return sql.ErrNoRows
	}
	if r.store.sessions.some(func(s models.Session) bool { return s.CourseID == id }) || r.store.receiptCourses.hasChild(id) {
		return repository.ErrReferenced
	}
	r.store.courses.remove(id)
	r.store.persistLocked()
	return nil
}

func sortCourses(courses []models.Course) {
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].Matiere != courses[j].Matiere {
			return courses[i].Matiere < courses[j].Matiere
		}
		return courses[i].ID < courses[j].ID
	})
}
