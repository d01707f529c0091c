package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const roomColumns = "id, nom, capacite, adresse, equipement, status"

// RoomRepository persists salles.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List returns every room in creation order.
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	query := "SELECT " + roomColumns + " FROM salles ORDER BY created_at, id"
	rooms := []models.Room{}
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// FindByID loads a room by id.
func (r *RoomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	query := "SELECT " + roomColumns + " FROM salles WHERE id = $1"
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		return nil, err
	}
	return &room, nil
}

// Create inserts a room, assigning a fresh id.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	room.ID = uuid.NewString()
	const query = `INSERT INTO salles (id, nom, capacite, adresse, equipement, status) VALUES (:id, :nom, :capacite, :adresse, :equipement, :status)`
	if _, err := r.db.NamedExecContext(ctx, query, room); err != nil {
		return writeError("create room", err)
	}
	return nil
}

// Update replaces every field of an existing room.
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	const query = `UPDATE salles SET nom = :nom, capacite = :capacite, adresse = :adresse, equipement = :equipement, status = :status WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, room)
	if err != nil {
		return writeError("update room", err)
	}
	return mustAffect(res)
}

// Delete removes a room no session is scheduled in.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM salles WHERE id = $1`, id)
	if err != nil {
		return deleteError("delete room", err)
	}
	return mustAffect(res)
}
