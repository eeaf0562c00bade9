package entity

// Salle is a cinema auditorium.
type Salle struct {
	ID          int64  `db:"salle_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Type        string `db:"type"`
	Capacity    int    `db:"capacity"`
}
