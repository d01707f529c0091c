package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const msgRoomNotFound = "Salle non trouvée"

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id string) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
}

// RoomRequest is the full body accepted on create and update.
type RoomRequest struct {
	Nom        string  `json:"nom" validate:"required"`
	Capacite   int     `json:"capacite" validate:"required,gt=0"`
	Adresse    *string `json:"adresse"`
	Equipement *string `json:"equipement"`
	Status     string  `json:"status" validate:"required,oneof=disponible indisponible"`
}

// RoomService orchestrates salle operations. The full list is cached.
type RoomService struct {
	repo      roomRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRoomService constructs a RoomService. cache may be nil.
func NewRoomService(repo roomRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *RoomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns every room, serving from cache when possible.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	const key = cachePrefixRooms + "all"
	var cached []models.Room
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.logger, "list rooms", err)
	}
	s.cache.Set(ctx, key, rooms)
	return rooms, nil
}

// Get returns a room by id.
func (s *RoomService) Get(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load room", msgRoomNotFound, err)
	}
	return room, nil
}

// Create registers a new room.
func (s *RoomService) Create(ctx context.Context, req RoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	room := req.toModel()
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, storageFailure(s.logger, "create room", err)
	}
	s.cache.Invalidate(ctx, cachePrefixRooms)
	return room, nil
}

// Update replaces every field of an existing room.
func (s *RoomService) Update(ctx context.Context, id string, req RoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err)
	}
	room := req.toModel()
	room.ID = id
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, writeError(s.logger, "update room", msgRoomNotFound, "", err)
	}
	s.cache.Invalidate(ctx, cachePrefixRooms)
	return room, nil
}

// Delete removes a room no session takes place in.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError(s.logger, "delete room", msgRoomNotFound, "Salle encore utilisée par des programmations", err)
	}
	s.cache.Invalidate(ctx, cachePrefixRooms)
	return nil
}

func (r RoomRequest) toModel() *models.Room {
	return &models.Room{
		Nom:        strings.TrimSpace(r.Nom),
		Capacite:   r.Capacite,
		Adresse:    normalizeOptional(r.Adresse),
		Equipement: normalizeOptional(r.Equipement),
		Status:     r.Status,
	}
}
