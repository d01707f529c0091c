package models

// Session is a programmation: one scheduled occurrence of a course.
type Session struct {
	ID         string   `db:"id" json:"id"`
	CourseID   string   `db:"cours_id" json:"coursId"`
	TeacherID  string   `db:"professeur_id" json:"professeurId"`
	RoomID     string   `db:"salle_id" json:"salleId"`
	Date       Date     `db:"date" json:"date"`
	Heure      string   `db:"heure" json:"heure"`
	Duree      int      `db:"duree" json:"duree"`
	StudentIDs []string `db:"-" json:"elevesIds"`
}

// Hours converts the duration in minutes to hours.
func (s Session) Hours() float64 {
	return float64(s.Duree) / 60
}

// SessionRange selects a teacher's sessions between two days inclusive.
type SessionRange struct {
	TeacherID string
	From      Date
	To        Date
}
