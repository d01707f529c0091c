package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// SessionRepository serves programmations and enrollments from a Store.
type SessionRepository struct {
	store *Store
}

// NewSessionRepository binds a session repository to store.
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.attach(r.store.sessions.all()), nil
}

func (r *SessionRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	sessions := r.store.sessions.filter(func(s models.Session) bool { return s.TeacherID == teacherID })
	sortSessions(sessions)
	return r.attach(sessions), nil
}

func (r *SessionRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	sessions := r.store.sessions.filter(func(s models.Session) bool { return r.store.sessionStudents.has(s.ID, studentID) })
	sortSessions(sessions)
	return r.attach(sessions), nil
}

func (r *SessionRepository) ListByTeacherInRange(ctx context.Context, rng models.SessionRange) ([]models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	sessions := r.store.sessions.filter(func(s models.Session) bool {
		return s.TeacherID == rng.TeacherID && !s.Date.Before(rng.From) && !s.Date.After(rng.To)
	})
	sortSessions(sessions)
	return r.attach(sessions), nil
}

func (r *SessionRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	sessions := make([]models.Session, 0, len(ids))
	for _, id := range models.UniqueIDs(ids) {
		if s, ok := r.store.sessions.get(id); ok {
			sessions = append(sessions, s)
		}
	}
	sortSessions(sessions)
	return r.attach(sessions), nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	session, ok := r.store.sessions.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	session.StudentIDs = r.store.sessionStudents.children(id)
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	session.StudentIDs = models.UniqueIDs(session.StudentIDs)
	if err := r.checkReferences(session); err != nil {
		return err
	}
	session.ID = uuid.NewString()
	r.save(session)
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.sessions.has(session.ID) {
		return sql.ErrNoRows
	}
	session.StudentIDs = models.UniqueIDs(session.StudentIDs)
	if err := r.checkReferences(session); err != nil {
		return err
	}
	r.save(session)
	return nil
}

// Delete drops the enrollments with the session; a payslip covering it
// blocks the removal.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.sessions.has(id) {
		return sql.ErrNoRows
	}
	if r.store.payslipSessions.hasChild(id) {
		return repository.ErrReferenced
	}
	r.store.sessionStudents.drop(id)
	r.store.sessions.remove(id)
	r.store.persistLocked()
	return nil
}

func (r *SessionRepository) AddStudent(ctx context.Context, sessionID, studentID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.sessions.has(sessionID) || !r.store.students.has(studentID) {
		return repository.ErrInvalidReference
	}
	if !r.store.sessionStudents.add(sessionID, studentID) {
		return repository.ErrDuplicate
	}
	r.store.persistLocked()
	return nil
}

func (r *SessionRepository) RemoveStudent(ctx context.Context, sessionID, studentID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.sessionStudents.remove(sessionID, studentID) {
		return sql.ErrNoRows
	}
	r.store.persistLocked()
	return nil
}

func (r *SessionRepository) checkReferences(session *models.Session) error {
	if !r.store.courses.has(session.CourseID) || !r.store.teachers.has(session.TeacherID) || !r.store.rooms.has(session.RoomID) {
		return repository.ErrInvalidReference
	}
	for _, id := range session.StudentIDs {
		if !r.store.students.has(id) {
			return repository.ErrInvalidReference
		}
	}
	return nil
}

func (r *SessionRepository) save(session *models.Session) {
	row := *session
	row.StudentIDs = nil
	r.store.sessions.put(row.ID, row)
	r.store.sessionStudents.set(row.ID, session.StudentIDs)
	r.store.persistLocked()
}

func (r *SessionRepository) attach(sessions []models.Session) []models.Session {
	for i := range sessions {
		sessions[i].StudentIDs = r.store.sessionStudents.children(sessions[i].ID)
	}
	return sessions
}

func sortSessions(sessions []models.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.Before(b.Date)
		}
		if a.Heure != b.Heure {
			return a.Heure < b.Heure
		}
		return a.ID < b.ID
	})
}
