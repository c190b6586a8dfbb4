package author

// Author is the persistence entity. The identifier is assigned by the
// store; a zero ID means "not yet created".
type Author struct {
	ID        int64   `json:"id" db:"id"`
	FirstName string  `json:"first_name" db:"first_name"`
	LastName  string  `json:"last_name" db:"last_name"`
	Bio       *string `json:"bio" db:"bio"`

	// Books owned by this author, loaded by the repository on reads.
	Books []BookSummary `json:"books"`
}

// BookSummary is the nested related-entity shape embedded in author reads.
type BookSummary struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Year  *int   `json:"year" db:"year"`
}
