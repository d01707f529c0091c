package models

// Payslip (fichePaie) records a teacher's pay for a set of sessions.
type Payslip struct {
	ID           string   `db:"id" json:"id"`
	TeacherID    string   `db:"professeur_id" json:"professeurId"`
	TotalHeures  float64  `db:"total_heures" json:"totalHeures"`
	TotalSalaire float64  `db:"total_salaire" json:"totalSalaire"`
	Date         Date     `db:"date" json:"date"`
	SessionIDs   []string `db:"-" json:"programmationIds"`
	PaymentID    string   `db:"paiement_id" json:"paiementId"`
}

// PayslipDetail bundles everything printed on a payslip.
type PayslipDetail struct {
	Payslip  Payslip
	Payment  Payment
	Teacher  Teacher
	Sessions []Session
}
