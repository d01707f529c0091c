package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
)

type fakeCacheRepo struct {
	items   map[string][]byte
	failGet bool
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{items: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if f.failGet {
		return errors.New("connection refused")
	}
	raw, ok := f.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.items[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range f.items {
		if strings.HasPrefix(key, prefix) {
			delete(f.items, key)
		}
	}
	return nil
}

func TestCourseServiceListIsCachedAndInvalidated(t *testing.T) {
	f := newFixture()
	repo := newFakeCacheRepo()
	cache := NewCacheService(repo, f.metrics, time.Minute, nil, true)
	svc := NewCourseService(f.courses, f.students, cache, nil, nil)

	_, err := svc.Create(context.Background(), CourseRequest{Matiere: "Maths", Niveau: "3ème", SalaireParHeure: 20})
	require.NoError(t, err)

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Contains(t, repo.items, cachePrefixCourses+"all")

	// a write behind the service's back is hidden by the cache
	f.course(t, "Physique", 25)
	courses, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 1)

	_, err = svc.Create(context.Background(), CourseRequest{Matiere: "Chimie", Niveau: "2nde", SalaireParHeure: 22})
	require.NoError(t, err)
	assert.NotContains(t, repo.items, cachePrefixCourses+"all")

	courses, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}

func TestCourseServiceCacheFailureFallsThrough(t *testing.T) {
	f := newFixture()
	repo := newFakeCacheRepo()
	repo.failGet = true
	svc := NewCourseService(f.courses, f.students, NewCacheService(repo, nil, 0, nil, true), nil, nil)
	f.course(t, "Maths", 20)

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestCourseServiceValidation(t *testing.T) {
	svc := NewCourseService(newFixture().courses, nil, nil, nil, nil)
	_, err := svc.Create(context.Background(), CourseRequest{Matiere: "Maths", Niveau: "3ème", SalaireParHeure: -5})
	requireAppError(t, err, http.StatusBadRequest, msgMissingFields)
}

func TestCourseServiceListByStudent(t *testing.T) {
	f := newFixture()
	svc := NewCourseService(f.courses, f.students, nil, nil, nil)
	student := f.student(t, "Bernard")
	maths, physique := f.course(t, "Maths", 20), f.course(t, "Physique", 25)
	f.course(t, "Chimie", 22)
	f.session(t, maths, f.teacher(t, "Dupont"), f.room(t), models.NewDate(2024, time.March, 4), "10:00", 60, student.ID)
	receipts := NewReceiptService(f.receipts, f.students, nil, nil, nil)
	_, err := receipts.Generate(context.Background(), ReceiptRequest{StudentID: student.ID, CourseIDs: []string{maths.ID, physique.ID}, Montant: 80, Methode: "espèces", Date: datePtr(2024, time.March, 1)})
	require.NoError(t, err)

	courses, err := svc.ListByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.ElementsMatch(t, []string{maths.ID, physique.ID}, []string{courses[0].ID, courses[1].ID})

	_, err = svc.ListByStudent(context.Background(), "missing")
	requireAppError(t, err, http.StatusNotFound, msgStudentNotFound)
}

func TestRoomServiceDeleteReferenced(t *testing.T) {
	f := newFixture()
	svc := NewRoomService(f.rooms, nil, nil, nil)
	room, err := svc.Create(context.Background(), RoomRequest{Nom: "Salle B", Capacite: 10, Status: models.RoomAvailable})
	require.NoError(t, err)
	f.session(t, f.course(t, "Maths", 20), f.teacher(t, "Dupont"), *room, models.NewDate(2024, time.March, 4), "10:00", 60)

	requireAppError(t, svc.Delete(context.Background(), room.ID), http.StatusConflict, "")

	_, err = svc.Create(context.Background(), RoomRequest{Nom: "Salle C", Capacite: 10, Status: "fermée"})
	requireAppError(t, err, http.StatusBadRequest, msgMissingFields)
}
