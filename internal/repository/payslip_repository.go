package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const payslipColumns = "id, professeur_id, total_heures, total_salaire, date, paiement_id"

// PayslipRepository persists fichePaies with their session links.
type PayslipRepository struct {
	db *sqlx.DB
}

// NewPayslipRepository creates a new payslip repository.
func NewPayslipRepository(db *sqlx.DB) *PayslipRepository {
	return &PayslipRepository{db: db}
}

// List returns every payslip with programmationIds attached.
func (r *PayslipRepository) List(ctx context.Context) ([]models.Payslip, error) {
	return r.selectPayslips(ctx, "list payslips", "SELECT "+payslipColumns+" FROM fiche_paies ORDER BY created_at, id")
}

// ListByTeacher returns the payslips of a teacher.
func (r *PayslipRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Payslip, error) {
	query := "SELECT " + payslipColumns + " FROM fiche_paies WHERE professeur_id = $1 ORDER BY created_at, id"
	return r.selectPayslips(ctx, "list payslips by teacher", query, teacherID)
}

// FindByID loads a payslip with programmationIds attached.
func (r *PayslipRepository) FindByID(ctx context.Context, id string) (*models.Payslip, error) {
	var payslip models.Payslip
	if err := r.db.GetContext(ctx, &payslip, "SELECT "+payslipColumns+" FROM fiche_paies WHERE id = $1", id); err != nil {
		return nil, err
	}
	ids, err := payslipSessions.expand(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	payslip.SessionIDs = ids
	return &payslip, nil
}

func (r *PayslipRepository) selectPayslips(ctx context.Context, op, query string, args ...interface{}) ([]models.Payslip, error) {
	payslips := []models.Payslip{}
	if err := r.db.SelectContext(ctx, &payslips, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ids := make([]string, len(payslips))
	for i := range payslips {
		ids[i] = payslips[i].ID
	}
	links, err := payslipSessions.expandAll(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range payslips {
		payslips[i].SessionIDs = linked(links, payslips[i].ID)
	}
	return payslips, nil
}

// CreateWithPayment writes the payment, the payslip and its session links as
// one unit.
func (r *PayslipRepository) CreateWithPayment(ctx context.Context, payslip *models.Payslip, payment *models.Payment) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create payslip: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertPayment(ctx, tx, payment); err != nil {
		return err
	}

	payslip.ID = uuid.NewString()
	payslip.PaymentID = payment.ID
	payslip.SessionIDs = models.UniqueIDs(payslip.SessionIDs)
	const query = `INSERT INTO fiche_paies (id, professeur_id, total_heures, total_salaire, date, paiement_id) VALUES (:id, :professeur_id, :total_heures, :total_salaire, :date, :paiement_id)`
	if _, err = tx.NamedExecContext(ctx, query, payslip); err != nil {
		return writeError("create payslip", err)
	}
	if err = payslipSessions.setLinks(ctx, tx, payslip.ID, payslip.SessionIDs, false); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create payslip: %w", err)
	}
	return nil
}

// Delete removes the payslip, its session links and its payment as one unit.
func (r *PayslipRepository) Delete(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete payslip: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var paymentID string
	if err = tx.GetContext(ctx, &paymentID, `SELECT paiement_id FROM fiche_paies WHERE id = $1 FOR UPDATE`, id); err != nil {
		return err
	}
	if err = payslipSessions.deleteLinks(ctx, tx, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM fiche_paies WHERE id = $1`, id); err != nil {
		return deleteError("delete payslip", err)
	}
	if err = deletePayment(ctx, tx, paymentID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete payslip: %w", err)
	}
	return nil
}
