package entity

type Movie struct {
	ID          int64  `db:"movie_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Duration    int    `db:"duration"`
	Genre       string `db:"genre"`
}
