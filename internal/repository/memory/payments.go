package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// PaymentRepository serves paiements from a Store.
type PaymentRepository struct {
	store *Store
}

// NewPaymentRepository binds a payment repository to store.
func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.payments.all(), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	payment, ok := r.store.payments.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.checkReferenceFree(payment.Reference); err != nil {
		return err
	}
	r.store.insertPaymentLocked(payment)
	r.store.persistLocked()
	return nil
}

func (s *Store) checkReferenceFree(reference string) error {
	if s.payments.some(func(p models.Payment) bool { return p.Reference == reference }) {
		return repository.ErrDuplicate
	}
	return nil
}

func (s *Store) insertPaymentLocked(payment *models.Payment) {
	payment.ID = uuid.NewString()
	s.payments.put(payment.ID, *payment)
}
