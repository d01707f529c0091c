package models

// Room statuses.
const (
	RoomAvailable   = "disponible"
	RoomUnavailable = "indisponible"
)

// Room is a salle sessions take place in.
type Room struct {
	ID         string  `db:"id" json:"id"`
	Nom        string  `db:"nom" json:"nom"`
	Capacite   int     `db:"capacite" json:"capacite"`
	Adresse    *string `db:"adresse" json:"adresse,omitempty"`
	Equipement *string `db:"equipement" json:"equipement,omitempty"`
	Status     string  `db:"status" json:"status"`
}
