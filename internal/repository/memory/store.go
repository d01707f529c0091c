package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/pkg/storage"
)

// snapshotStore is where the whole state is mirrored after each mutation.
type snapshotStore interface {
	Save(filename string, data []byte) error
	Load(filename string) ([]byte, error)
}

// Store is an in-process backing store for every record kind. Each mutation
// checks all of its preconditions before touching state, so a failed call
// leaves nothing behind.
type Store struct {
	mu sync.RWMutex

	teachers *table[models.Teacher]
	students *table[models.Student]
	courses  *table[models.Course]
	rooms    *table[models.Room]
	sessions *table[models.Session]
	payments *table[models.Payment]
	receipts *table[models.Receipt]
	payslips *table[models.Payslip]

	sessionStudents linkSet
	payslipSessions linkSet
	receiptCourses  linkSet

	snapshots    snapshotStore
	snapshotName string
	logger       *zap.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithSnapshot mirrors the state into name on the given store.
func WithSnapshot(snapshots snapshotStore, name string) Option {
	return func(s *Store) {
		s.snapshots = snapshots
		s.snapshotName = name
	}
}

// WithLogger sets the logger used to report snapshot failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		teachers:        newTable[models.Teacher](),
		students:        newTable[models.Student](),
		courses:         newTable[models.Course](),
		rooms:           newTable[models.Room](),
		sessions:        newTable[models.Session](),
		payments:        newTable[models.Payment](),
		receipts:        newTable[models.Receipt](),
		payslips:        newTable[models.Payslip](),
		sessionStudents: linkSet{},
		payslipSessions: linkSet{},
		receiptCourses:  linkSet{},
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot is the persisted form: every table in insertion order with its
// id arrays attached.
type snapshot struct {
	Professeurs    []models.Teacher `json:"professeurs"`
	Eleves         []models.Student `json:"eleves"`
	Cours          []models.Course  `json:"cours"`
	Salles         []models.Room    `json:"salles"`
	Programmations []models.Session `json:"programmations"`
	Paiements      []models.Payment `json:"paiements"`
	RecuPaiements  []models.Receipt `json:"recuPaiements"`
	FichePaies     []models.Payslip `json:"fichePaies"`
}

// Load replaces the state with the saved snapshot. A missing snapshot leaves
// the store empty.
func (s *Store) Load() error {
	if s.snapshots == nil {
		return nil
	}
	raw, err := s.snapshots.Load(s.snapshotName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked(snap)
	return nil
}

func (s *Store) restoreLocked(snap snapshot) {
	fresh := NewStore()
	for _, t := range snap.Professeurs {
		fresh.teachers.put(t.ID, t)
	}
	for _, e := range snap.Eleves {
		fresh.students.put(e.ID, e)
	}
	for _, c := range snap.Cours {
		fresh.courses.put(c.ID, c)
	}
	for _, r := range snap.Salles {
		fresh.rooms.put(r.ID, r)
	}
	for _, p := range snap.Programmations {
		fresh.sessionStudents.set(p.ID, models.UniqueIDs(p.StudentIDs))
		p.StudentIDs = nil
		fresh.sessions.put(p.ID, p)
	}
	for _, p := range snap.Paiements {
		fresh.payments.put(p.ID, p)
	}
	for _, r := range snap.RecuPaiements {
		fresh.receiptCourses.set(r.ID, models.UniqueIDs(r.CourseIDs))
		r.CourseIDs = nil
		fresh.receipts.put(r.ID, r)
	}
	for _, f := range snap.FichePaies {
		fresh.payslipSessions.set(f.ID, models.UniqueIDs(f.SessionIDs))
		f.SessionIDs = nil
		fresh.payslips.put(f.ID, f)
	}

	s.teachers, s.students, s.courses, s.rooms = fresh.teachers, fresh.students, fresh.courses, fresh.rooms
	s.sessions, s.payments, s.receipts, s.payslips = fresh.sessions, fresh.payments, fresh.receipts, fresh.payslips
	s.sessionStudents, s.payslipSessions, s.receiptCourses = fresh.sessionStudents, fresh.payslipSessions, fresh.receiptCourses
}

func (s *Store) snapshotLocked() snapshot {
	snap := snapshot{
		Professeurs:    s.teachers.all(),
		Eleves:         s.students.all(),
		Cours:          s.courses.all(),
		Salles:         s.rooms.all(),
		Programmations: s.sessions.all(),
		Paiements:      s.payments.all(),
		RecuPaiements:  s.receipts.all(),
		FichePaies:     s.payslips.all(),
	}
	for i := range snap.Programmations {
		snap.Programmations[i].StudentIDs = s.sessionStudents.children(snap.Programmations[i].ID)
	}
	for i := range snap.RecuPaiements {
		snap.RecuPaiements[i].CourseIDs = s.receiptCourses.children(snap.RecuPaiements[i].ID)
	}
	for i := range snap.FichePaies {
		snap.FichePaies[i].SessionIDs = s.payslipSessions.children(snap.FichePaies[i].ID)
	}
	return snap
}

// persistLocked mirrors the state. Failures are logged; the in-memory state
// stays authoritative.
func (s *Store) persistLocked() {
	if s.snapshots == nil {
		return
	}
	raw, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		s.logger.Error("encode snapshot", zap.Error(err))
		return
	}
	if err := s.snapshots.Save(s.snapshotName, raw); err != nil {
		s.logger.Error("save snapshot", zap.String("file", s.snapshotName), zap.Error(err))
	}
}

// Ping always succeeds; it lets the memory backend answer readiness probes.
func (s *Store) Ping() error {
	return nil
}
