package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

const receiptColumns = "id, eleve_id, paiement_id, date"

// ReceiptRepository persists recuPaiements with their course links.
type ReceiptRepository struct {
	db *sqlx.DB
}

// NewReceiptRepository creates a new receipt repository.
func NewReceiptRepository(db *sqlx.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

// List returns every receipt with coursIds attached.
func (r *ReceiptRepository) List(ctx context.Context) ([]models.Receipt, error) {
	return r.selectReceipts(ctx, "list receipts", "SELECT "+receiptColumns+" FROM recu_paiements ORDER BY created_at, id")
}

// ListByStudent returns the receipts issued to a student.
func (r *ReceiptRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Receipt, error) {
	query := "SELECT " + receiptColumns + " FROM recu_paiements WHERE eleve_id = $1 ORDER BY created_at, id"
	return r.selectReceipts(ctx, "list receipts by student", query, studentID)
}

// FindByID loads a receipt with coursIds attached.
func (r *ReceiptRepository) FindByID(ctx context.Context, id string) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.db.GetContext(ctx, &receipt, "SELECT "+receiptColumns+" FROM recu_paiements WHERE id = $1", id); err != nil {
		return nil, err
	}
	ids, err := receiptCourses.expand(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	receipt.CourseIDs = ids
	return &receipt, nil
}

func (r *ReceiptRepository) selectReceipts(ctx context.Context, op, query string, args ...interface{}) ([]models.Receipt, error) {
	receipts := []models.Receipt{}
	if err := r.db.SelectContext(ctx, &receipts, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ids := make([]string, len(receipts))
	for i := range receipts {
		ids[i] = receipts[i].ID
	}
	links, err := receiptCourses.expandAll(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		receipts[i].CourseIDs = linked(links, receipts[i].ID)
	}
	return receipts, nil
}

// CreateWithPayment writes the payment, the receipt and its course links as
// one unit. Unknown student or course ids fail with ErrInvalidReference.
func (r *ReceiptRepository) CreateWithPayment(ctx context.Context, receipt *models.Receipt, payment *models.Payment) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create receipt: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertPayment(ctx, tx, payment); err != nil {
		return err
	}

	receipt.ID = uuid.NewString()
	receipt.PaymentID = payment.ID
	receipt.CourseIDs = models.UniqueIDs(receipt.CourseIDs)
	const query = `INSERT INTO recu_paiements (id, eleve_id, paiement_id, date) VALUES (:id, :eleve_id, :paiement_id, :date)`
	if _, err = tx.NamedExecContext(ctx, query, receipt); err != nil {
		return writeError("create receipt", err)
	}
	if err = receiptCourses.setLinks(ctx, tx, receipt.ID, receipt.CourseIDs, false); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create receipt: %w", err)
	}
	return nil
}

// Delete removes the receipt, its course links and its payment as one unit.
func (r *ReceiptRepository) Delete(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete receipt: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var paymentID string
	if err = tx.GetContext(ctx, &paymentID, `SELECT paiement_id FROM recu_paiements WHERE id = $1 FOR UPDATE`, id); err != nil {
		return err
	}
	if err = receiptCourses.deleteLinks(ctx, tx, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM recu_paiements WHERE id = $1`, id); err != nil {
		return deleteError("delete receipt", err)
	}
	if err = deletePayment(ctx, tx, paymentID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete receipt: %w", err)
	}
	return nil
}
