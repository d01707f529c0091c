package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const paymentColumns = "id, montant, date, methode, reference"

// PaymentRepository persists paiements. Payments are never updated.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// List returns every payment in creation order.
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM paiements ORDER BY created_at, id"
	payments := []models.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// FindByID loads a payment by id.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	return findPayment(ctx, r.db, id)
}

// Create inserts a payment. A reused reference fails with ErrDuplicate.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return insertPayment(ctx, r.db, payment)
}

func findPayment(ctx context.Context, q sqlx.QueryerContext, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := sqlx.GetContext(ctx, q, &payment, "SELECT "+paymentColumns+" FROM paiements WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &payment, nil
}

func insertPayment(ctx context.Context, ext sqlx.ExtContext, payment *models.Payment) error {
	payment.ID = uuid.NewString()
	const query = `INSERT INTO paiements (id, montant, date, methode, reference) VALUES (:id, :montant, :date, :methode, :reference)`
	if _, err := sqlx.NamedExecContext(ctx, ext, query, payment); err != nil {
		return writeError("create payment", err)
	}
	return nil
}

func deletePayment(ctx context.Context, ext sqlx.ExtContext, id string) error {
	if _, err := ext.ExecContext(ctx, `DELETE FROM paiements WHERE id = $1`, id); err != nil {
		return deleteError("delete payment", err)
	}
	return nil
}
