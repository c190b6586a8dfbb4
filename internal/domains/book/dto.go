package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxTitleLength   = 255
	maxISBNLength    = 32
	maxSummaryLength = 5000
	minYear          = 1450
	maxYear          = 2100
)

// CreateBookRequest - POST /api/books.
type CreateBookRequest struct {
	Title    string   `json:"title"`
	Year     *int     `json:"year,omitempty"`
	ISBN     *string  `json:"isbn,omitempty"`
	Summary  *string  `json:"summary,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	AuthorID int64    `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, maxTitleLength),
		),
		validation.Field(&r.Year, validation.Min(minYear), validation.Max(maxYear)),
		validation.Field(&r.ISBN, validation.Length(0, maxISBNLength)),
		validation.Field(&r.Summary, validation.Length(0, maxSummaryLength)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(int64(1)).Error("author_id must be a positive integer"),
		),
	)
}

// UpdateBookRequest - PUT /api/books/:id. The body identifier must equal
// the path identifier.
type UpdateBookRequest struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Year     *int     `json:"year,omitempty"`
	ISBN     *string  `json:"isbn,omitempty"`
	Summary  *string  `json:"summary,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	AuthorID int64    `json:"author_id"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, maxTitleLength),
		),
		validation.Field(&r.Year, validation.Min(minYear), validation.Max(maxYear)),
		validation.Field(&r.ISBN, validation.Length(0, maxISBNLength)),
		validation.Field(&r.Summary, validation.Length(0, maxSummaryLength)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(int64(1)).Error("author_id must be a positive integer"),
		),
	)
}

// BookResponse is the read DTO with the owning author's summary.
type BookResponse struct {
	ID       int64          `json:"id"`
	Title    string         `json:"title"`
	Year     *int           `json:"year,omitempty"`
	ISBN     *string        `json:"isbn,omitempty"`
	Summary  *string        `json:"summary,omitempty"`
	Image    *string        `json:"image,omitempty"`
	Price    *float64       `json:"price,omitempty"`
	AuthorID int64          `json:"author_id"`
	Author   *AuthorSummary `json:"author,omitempty"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    b.Price,
		AuthorID: b.AuthorID,
		Author:   b.Author,
	}
}

func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    r.Title,
		Year:     r.Year,
		ISBN:     r.ISBN,
		Summary:  r.Summary,
		Image:    r.Image,
		Price:    r.Price,
		AuthorID: r.AuthorID,
	}
}

func (r *UpdateBookRequest) ToEntity() *Book {
	return &Book{
		ID:       r.ID,
		Title:    r.Title,
		Year:     r.Year,
		ISBN:     r.ISBN,
		Summary:  r.Summary,
		Image:    r.Image,
		Price:    r.Price,
		AuthorID: r.AuthorID,
	}
}
