package book

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidID     = errors.New("book id must be a positive integer")
	ErrIDMismatch    = errors.New("body id does not match path id")
	ErrEmptyRequest  = errors.New("empty request body")
	ErrAuthorMissing = errors.New("referenced author does not exist")
)

// ToHTTPStatus maps a domain error to its response status.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrIDMismatch),
		errors.Is(err, ErrEmptyRequest),
		errors.Is(err, ErrAuthorMissing):
		return 400
	default:
		return 500
	}
}
