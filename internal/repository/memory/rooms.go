package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// RoomRepository serves salles from a Store.
type RoomRepository struct {
	store *Store
}

// NewRoomRepository binds a room repository to store.
func NewRoomRepository(store *Store) *RoomRepository {
	return &RoomRepository{store: store}
}

func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.rooms.all(), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	room, ok := r.store.rooms.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	room.ID = uuid.NewString()
	r.store.rooms.put(room.ID, *room)
	r.store.persistLocked()
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.rooms.has(room.ID) {
		return sql.ErrNoRows
	}
	r.store.rooms.put(room.ID, *room)
	r.store.persistLocked()
	return nil
}

// Delete refuses to remove a room a session is scheduled in.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.rooms.has(id) {
		return sql.ErrNoRows
	}
	if r.store.sessions.some(func(s models.Session) bool { return s.RoomID == id }) {
		return repository.ErrReferenced
	}
	r.store.rooms.remove(id)
	r.store.persistLocked()
	return nil
}
