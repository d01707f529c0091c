package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const sessionColumns = "id, cours_id, professeur_id, salle_id, date, heure, duree"

// SessionRepository persists programmations and their enrolled students.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// List returns every session in creation order with elevesIds attached.
func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	return r.selectSessions(ctx, "list sessions", "SELECT "+sessionColumns+" FROM programmations ORDER BY created_at, id")
}

// ListByTeacher returns the sessions given by a teacher ordered by date and hour.
func (r *SessionRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error) {
	query := "SELECT " + sessionColumns + " FROM programmations WHERE professeur_id = $1 ORDER BY date, heure, id"
	return r.selectSessions(ctx, "list sessions by teacher", query, teacherID)
}

// ListByStudent returns the sessions a student is enrolled in.
func (r *SessionRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Session, error) {
	const query = `SELECT p.id, p.cours_id, p.professeur_id, p.salle_id, p.date, p.heure, p.duree FROM programmations p
JOIN eleves_programmations ep ON ep.programmation_id = p.id
WHERE ep.eleve_id = $1
ORDER BY p.date, p.heure, p.id`
	return r.selectSessions(ctx, "list sessions by student", query, studentID)
}

// ListByTeacherInRange returns a teacher's sessions dated within the range,
// bounds included, ordered by date, hour and id.
func (r *SessionRepository) ListByTeacherInRange(ctx context.Context, rng models.SessionRange) ([]models.Session, error) {
	query := "SELECT " + sessionColumns + " FROM programmations WHERE professeur_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date, heure, id"
	return r.selectSessions(ctx, "list sessions in range", query, rng.TeacherID, rng.From, rng.To)
}

// FindByIDs loads the listed sessions; unknown ids are skipped.
func (r *SessionRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Session, error) {
	if len(ids) == 0 {
		return []models.Session{}, nil
	}
	query, args, err := sqlx.In("SELECT "+sessionColumns+" FROM programmations WHERE id IN (?) ORDER BY date, heure, id", ids)
	if err != nil {
		return nil, fmt.Errorf("build session lookup: %w", err)
	}
	return r.selectSessions(ctx, "find sessions", r.db.Rebind(query), args...)
}

// FindByID loads a session with its elevesIds.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	query := "SELECT " + sessionColumns + " FROM programmations WHERE id = $1"
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	ids, err := sessionStudents.expand(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	session.StudentIDs = ids
	return &session, nil
}

func (r *SessionRepository) selectSessions(ctx context.Context, op, query string, args ...interface{}) ([]models.Session, error) {
	sessions := []models.Session{}
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ids := make([]string, len(sessions))
	for i := range sessions {
		ids[i] = sessions[i].ID
	}
	links, err := sessionStudents.expandAll(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].StudentIDs = linked(links, sessions[i].ID)
	}
	return sessions, nil
}

// Create inserts a session and its student links in one transaction.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) (err error) {
	session.ID = uuid.NewString()
	session.StudentIDs = models.UniqueIDs(session.StudentIDs)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create session: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const query = `INSERT INTO programmations (id, cours_id, professeur_id, salle_id, date, heure, duree) VALUES (:id, :cours_id, :professeur_id, :salle_id, :date, :heure, :duree)`
	if _, err = tx.NamedExecContext(ctx, query, session); err != nil {
		return writeError("create session", err)
	}
	if err = sessionStudents.setLinks(ctx, tx, session.ID, session.StudentIDs, false); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create session: %w", err)
	}
	return nil
}

// Update replaces the session fields and its student links in one transaction.
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) (err error) {
	session.StudentIDs = models.UniqueIDs(session.StudentIDs)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update session: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const query = `UPDATE programmations SET cours_id = :cours_id, professeur_id = :professeur_id, salle_id = :salle_id, date = :date, heure = :heure, duree = :duree WHERE id = :id`
	res, err := tx.NamedExecContext(ctx, query, session)
	if err != nil {
		return writeError("update session", err)
	}
	if err = mustAffect(res); err != nil {
		return err
	}
	if err = sessionStudents.setLinks(ctx, tx, session.ID, session.StudentIDs, true); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit update session: %w", err)
	}
	return nil
}

// Delete removes a session and its enrollments. A payslip covering the
// session makes it fail with ErrReferenced.
func (r *SessionRepository) Delete(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete session: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = sessionStudents.deleteLinks(ctx, tx, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM programmations WHERE id = $1`, id)
	if err != nil {
		return deleteError("delete session", err)
	}
	if err = mustAffect(res); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete session: %w", err)
	}
	return nil
}

// AddStudent enrolls a student. A second enrollment fails with ErrDuplicate.
func (r *SessionRepository) AddStudent(ctx context.Context, sessionID, studentID string) error {
	const query = `INSERT INTO eleves_programmations (programmation_id, eleve_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, studentID); err != nil {
		return writeError("enroll student", err)
	}
	return nil
}

// RemoveStudent unenrolls a student, returning sql.ErrNoRows when they were
// not enrolled.
func (r *SessionRepository) RemoveStudent(ctx context.Context, sessionID, studentID string) error {
	const query = `DELETE FROM eleves_programmations WHERE programmation_id = $1 AND eleve_id = $2`
	res, err := r.db.ExecContext(ctx, query, sessionID, studentID)
	if err != nil {
		return fmt.Errorf("unenroll student: %w", err)
	}
	return mustAffect(res)
}
