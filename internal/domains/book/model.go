package book

// Book is the persistence entity. AuthorID is a required foreign key to
// the authors table.
type Book struct {
	ID       int64    `json:"id" db:"id"`
	Title    string   `json:"title" db:"title"`
	Year     *int     `json:"year" db:"year"`
	ISBN     *string  `json:"isbn" db:"isbn"`
	Summary  *string  `json:"summary" db:"summary"`
	Image    *string  `json:"image" db:"image"`
	Price    *float64 `json:"price" db:"price"`
	AuthorID int64    `json:"author_id" db:"author_id"`

	// Owning author, loaded by the repository on reads.
	Author *AuthorSummary `json:"author,omitempty"`
}

// AuthorSummary is the nested related-entity shape embedded in book reads.
type AuthorSummary struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}
