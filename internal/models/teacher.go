package models

// Teacher statuses.
const (
	TeacherActive   = "actif"
	TeacherInactive = "inactif"
)

// Teacher represents a professeur giving sessions at the center.
type Teacher struct {
	ID         string  `db:"id" json:"id"`
	Nom        string  `db:"nom" json:"nom"`
	Prenom     string  `db:"prenom" json:"prenom"`
	Email      string  `db:"email" json:"email"`
	Telephone  string  `db:"telephone" json:"telephone"`
	Diplome    string  `db:"diplome" json:"diplome"`
	Specialite string  `db:"specialite" json:"specialite"`
	Status     string  `db:"status" json:"status"`
	Adresse    *string `db:"adresse" json:"adresse,omitempty"`
	Biographie *string `db:"biographie" json:"biographie,omitempty"`
}

// FullName renders "Prenom Nom".
func (t Teacher) FullName() string {
	return t.Prenom + " " + t.Nom
}
