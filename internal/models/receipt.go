package models

// Receipt (recuPaiement) acknowledges a student payment for courses.
type Receipt struct {
	ID        string   `db:"id" json:"id"`
	StudentID string   `db:"eleve_id" json:"eleveId"`
	PaymentID string   `db:"paiement_id" json:"paiementId"`
	CourseIDs []string `db:"-" json:"coursIds"`
	Date      Date     `db:"date" json:"date"`
}

// ReceiptDetail bundles everything printed on a receipt.
type ReceiptDetail struct {
	Receipt Receipt
	Payment Payment
	Student Student
	Courses []Course
}
