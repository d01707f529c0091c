package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
)

// PayslipRepository serves fichePaies from a Store.
type PayslipRepository struct {
	store *Store
}

// NewPayslipRepository binds a payslip repository to store.
func NewPayslipRepository(store *Store) *PayslipRepository {
	return &PayslipRepository{store: store}
}

func (r *PayslipRepository) List(ctx context.Context) ([]models.Payslip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.attach(r.store.payslips.all()), nil
}

func (r *PayslipRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Payslip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.attach(r.store.payslips.filter(func(p models.Payslip) bool { return p.TeacherID == teacherID })), nil
}

func (r *PayslipRepository) FindByID(ctx context.Context, id string) (*models.Payslip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	payslip, ok := r.store.payslips.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	payslip.SessionIDs = r.store.payslipSessions.children(id)
	return &payslip, nil
}

// CreateWithPayment validates the teacher, every session and the payment
// reference before writing anything.
func (r *PayslipRepository) CreateWithPayment(ctx context.Context, payslip *models.Payslip, payment *models.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payslip.SessionIDs = models.UniqueIDs(payslip.SessionIDs)
	if !r.store.teachers.has(payslip.TeacherID) {
		return repository.ErrInvalidReference
	}
	for _, id := range payslip.SessionIDs {
		if !r.store.sessions.has(id) {
			return repository.ErrInvalidReference
		}
	}
	if err := r.store.checkReferenceFree(payment.Reference); err != nil {
		return err
	}

	r.store.insertPaymentLocked(payment)
	payslip.ID = uuid.NewString()
	payslip.PaymentID = payment.ID
	row := *payslip
	row.SessionIDs = nil
	r.store.payslips.put(row.ID, row)
	r.store.payslipSessions.set(row.ID, payslip.SessionIDs)
	r.store.persistLocked()
	return nil
}

// Delete removes the payslip, its session links and its payment.
func (r *PayslipRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	payslip, ok := r.store.payslips.get(id)
	if !ok {
		return sql.ErrNoRows
	}
	r.store.payslipSessions.drop(id)
	r.store.payslips.remove(id)
	r.store.payments.remove(payslip.PaymentID)
	r.store.persistLocked()
	return nil
}

func (r *PayslipRepository) attach(payslips []models.Payslip) []models.Payslip {
	for i := range payslips {
		payslips[i].SessionIDs = r.store.payslipSessions.children(payslips[i].ID)
	}
	return payslips
}
