package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/pkg/export"
)

type receiptLookup interface {
	FindByID(ctx context.Context, id string) (*models.Receipt, error)
}

type payslipLookup interface {
	FindByID(ctx context.Context, id string) (*models.Payslip, error)
}

type paymentLookup interface {
	FindByID(ctx context.Context, id string) (*models.Payment, error)
}

type coursesByID interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Course, error)
}

type sessionsByID interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Session, error)
}

// DocumentRepositories lists the lookups the document service assembles
// receipts and payslips from.
type DocumentRepositories struct {
	Receipts receiptLookup
	Payslips payslipLookup
	Payments paymentLookup
	Students studentLookup
	Teachers teacherLookup
	Courses  coursesByID
	Sessions sessionsByID
}

// Document is a rendered file ready to be served.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentService renders receipts and payslips as PDF.
type DocumentService struct {
	repos  DocumentRepositories
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewDocumentService constructs a DocumentService printing orgName in the banner.
func NewDocumentService(repos DocumentRepositories, orgName string, logger *zap.Logger) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{repos: repos, pdf: export.NewPDFExporter(orgName), logger: logger}
}

// ReceiptDetail loads a receipt with its payment, student and courses.
func (s *DocumentService) ReceiptDetail(ctx context.Context, id string) (*models.ReceiptDetail, error) {
	receipt, err := s.repos.Receipts.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load receipt", msgReceiptNotFound, err)
	}
	payment, err := s.repos.Payments.FindByID(ctx, receipt.PaymentID)
	if err != nil {
		return nil, lookupError(s.logger, "load receipt payment", msgPaymentNotFound, err)
	}
	student, err := s.repos.Students.FindByID(ctx, receipt.StudentID)
	if err != nil {
		return nil, lookupError(s.logger, "load receipt student", msgStudentNotFound, err)
	}
	courses, err := s.repos.Courses.FindByIDs(ctx, receipt.CourseIDs)
	if err != nil {
		return nil, storageFailure(s.logger, "load receipt courses", err)
	}
	return &models.ReceiptDetail{Receipt: *receipt, Payment: *payment, Student: *student, Courses: courses}, nil
}

// PayslipDetail loads a payslip with its payment, teacher and sessions.
func (s *DocumentService) PayslipDetail(ctx context.Context, id string) (*models.PayslipDetail, error) {
	payslip, err := s.repos.Payslips.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "load payslip", msgPayslipNotFound, err)
	}
	payment, err := s.repos.Payments.FindByID(ctx, payslip.PaymentID)
	if err != nil {
		return nil, lookupError(s.logger, "load payslip payment", msgPaymentNotFound, err)
	}
	teacher, err := s.repos.Teachers.FindByID(ctx, payslip.TeacherID)
	if err != nil {
		return nil, lookupError(s.logger, "load payslip teacher", msgTeacherNotFound, err)
	}
	sessions, err := s.repos.Sessions.FindByIDs(ctx, payslip.SessionIDs)
	if err != nil {
		return nil, storageFailure(s.logger, "load payslip sessions", err)
	}
	return &models.PayslipDetail{Payslip: *payslip, Payment: *payment, Teacher: *teacher, Sessions: sessions}, nil
}

// ReceiptPDF renders a receipt.
func (s *DocumentService) ReceiptPDF(ctx context.Context, id string) (*Document, error) {
	detail, err := s.ReceiptDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := s.pdf.Render(receiptDocument(detail))
	if err != nil {
		s.logger.Error("render receipt pdf", zap.String("receipt_id", id), zap.Error(err))
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return &Document{Filename: "recu-" + detail.Payment.Reference + ".pdf", ContentType: "application/pdf", Data: data}, nil
}

// PayslipPDF renders a payslip.
func (s *DocumentService) PayslipPDF(ctx context.Context, id string) (*Document, error) {
	detail, err := s.PayslipDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := s.pdf.Render(payslipDocument(detail))
	if err != nil {
		s.logger.Error("render payslip pdf", zap.String("payslip_id", id), zap.Error(err))
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return &Document{Filename: "fiche-paie-" + detail.Payment.Reference + ".pdf", ContentType: "application/pdf", Data: data}, nil
}

func receiptDocument(d *models.ReceiptDetail) export.Document {
	lines := export.Table{Headers: []string{"Matière", "Niveau"}}
	for _, course := range d.Courses {
		lines.Rows = append(lines.Rows, []string{course.Matiere, course.Niveau})
	}
	return export.Document{
		Title: "Reçu de paiement",
		Header: []export.Field{
			{Label: "Référence", Value: d.Payment.Reference},
			{Label: "Date", Value: d.Receipt.Date.String()},
			{Label: "Élève", Value: d.Student.FullName()},
		},
		Lines: lines,
		Totals: []export.Field{
			{Label: "Montant", Value: formatAmount(d.Payment.Montant)},
			{Label: "Méthode", Value: d.Payment.Methode},
		},
	}
}

func payslipDocument(d *models.PayslipDetail) export.Document {
	lines := export.Table{Headers: []string{"Date", "Heure", "Durée (min)"}}
	for _, session := range d.Sessions {
		lines.Rows = append(lines.Rows, []string{session.Date.String(), session.Heure, strconv.Itoa(session.Duree)})
	}
	var rate float64
	if d.Payslip.TotalHeures > 0 {
		rate = d.Payslip.TotalSalaire / d.Payslip.TotalHeures
	}
	return export.Document{
		Title: "Fiche de paie",
		Header: []export.Field{
			{Label: "Référence", Value: d.Payment.Reference},
			{Label: "Période", Value: payslipPeriod(d)},
			{Label: "Professeur", Value: d.Teacher.FullName()},
		},
		Lines: lines,
		Totals: []export.Field{
			{Label: "Total heures", Value: strconv.FormatFloat(d.Payslip.TotalHeures, 'f', 2, 64)},
			{Label: "Taux horaire", Value: formatAmount(rate)},
			{Label: "Total salaire", Value: formatAmount(d.Payslip.TotalSalaire)},
		},
	}
}

// payslipPeriod names the month of the first covered session.
func payslipPeriod(d *models.PayslipDetail) string {
	day := d.Payslip.Date
	if len(d.Sessions) > 0 {
		day = d.Sessions[0].Date
	}
	return day.Format("01/2006")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + " €"
}
