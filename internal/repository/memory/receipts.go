package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// ReceiptRepository serves recuPaiements from a Store.
type ReceiptRepository struct {
	store *Store
}

// NewReceiptRepository binds a receipt repository to store.
func NewReceiptRepository(store *Store) *ReceiptRepository {
	return &ReceiptRepository{store: store}
}

func (r *ReceiptRepository) List(ctx context.Context) ([]models.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.attach(r.store.receipts.all()), nil
}

func (r *ReceiptRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.attach(r.store.receipts.filter(func(rc models.Receipt) bool { return rc.StudentID == studentID })), nil
}

func (r *ReceiptRepository) FindByID(ctx context.Context, id string) (*models.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	receipt, ok := r.store.receipts.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	receipt.CourseIDs = r.store.receiptCourses.children(id)
	return &receipt, nil
}

// CreateWithPayment validates the student, every course and the payment
// reference before writing anything.
func (r *ReceiptRepository) CreateWithPayment(ctx context.Context, receipt *models.Receipt, payment *models.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	receipt.CourseIDs = models.UniqueIDs(receipt.CourseIDs)
	if !r.store.students.has(receipt.StudentID) {
		return repository.ErrInvalidReference
	}
	for _, id := range receipt.CourseIDs {
		if !r.store.courses.has(id) {
			return repository.ErrInvalidReference
		}
	}
	if err := r.store.checkReferenceFree(payment.Reference); err != nil {
		return err
	}

	r.store.insertPaymentLocked(payment)
	receipt.ID = uuid.NewString()
	receipt.PaymentID = payment.ID
	row := *receipt
	row.CourseIDs = nil
	r.store.receipts.put(row.ID, row)
	r.store.receiptCourses.set(row.ID, receipt.CourseIDs)
	r.store.persistLocked()
	return nil
}

// Delete removes the receipt, its course links and its payment.
func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	receipt, ok := r.store.receipts.get(id)
	if !ok {
		return sql.ErrNoRows
	}
	r.store.receiptCourses.drop(id)
	r.store.receipts.remove(id)
	r.store.payments.remove(receipt.PaymentID)
	r.store.persistLocked()
	return nil
}

func (r *ReceiptRepository) attach(receipts []models.Receipt) []models.Receipt {
	for i := range receipts {
		receipts[i].CourseIDs = r.store.receiptCourses.children(receipts[i].ID)
	}
	return receipts
}
