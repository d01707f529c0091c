package models

// Course is a subject taught at a level with its hourly teacher pay.
type Course struct {
	ID              string  `db:"id" json:"id"`
	Matiere         string  `db:"matiere" json:"matiere"`
	Niveau          string  `db:"niveau" json:"niveau"`
	SalaireParHeure float64 `db:"salaire_par_heure" json:"salaireParHeure"`
	Description     *string `db:"description" json:"description,omitempty"`
}
