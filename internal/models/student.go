package models

// Student represents an enrolled eleve.
type Student struct {
	ID              string  `db:"id" json:"id"`
	Nom             string  `db:"nom" json:"nom"`
	Prenom          string  `db:"prenom" json:"prenom"`
	Email           string  `db:"email" json:"email"`
	Telephone       string  `db:"telephone" json:"telephone"`
	Niveau          string  `db:"niveau" json:"niveau"`
	TelParents      string  `db:"tel_parents" json:"telParents"`
	DateInscription Date    `db:"date_inscription" json:"dateInscription"`
	Adresse         *string `db:"adresse" json:"adresse,omitempty"`
	Notes           *string `db:"notes" json:"notes,omitempty"`
}

// FullName renders "Prenom Nom".
func (s Student) FullName() string {
	return s.Prenom + " " + s.Nom
}
