package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidID      = errors.New("author id must be a positive integer")
	ErrIDMismatch     = errors.New("body id does not match path id")
	ErrEmptyRequest   = errors.New("empty request body")
	ErrAuthorHasBooks = errors.New("cannot delete author with linked books")
)

// ToHTTPStatus maps a domain error to its response status.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrIDMismatch), errors.Is(err, ErrEmptyRequest):
		return 400
	case errors.Is(err, ErrAuthorHasBooks):
		return 409
	default:
		return 500
	}
}
