package user

// User is the identity record backing login. This core only reads it;
// registration and account management live elsewhere.
type User struct {
	ID           int64    `json:"id" db:"id"`
	Username     string   `json:"username" db:"username"`
	Email        string   `json:"email" db:"email"`
	PasswordHash string   `json:"-" db:"password_hash"` // never exposed
	Roles        []string `json:"roles" db:"roles"`
}
