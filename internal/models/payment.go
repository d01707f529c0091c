package models

// Payment methods written by the generators.
const (
	MethodTransfer = "virement"
)

// Payment is an amount paid or owed, shared by receipts and payslips.
type Payment struct {
	ID        string  `db:"id" json:"id"`
	Montant   float64 `db:"montant" json:"montant"`
	Date      Date    `db:"date" json:"date"`
	Methode   string  `db:"methode" json:"methode"`
	Reference string  `db:"reference" json:"reference"`
}
