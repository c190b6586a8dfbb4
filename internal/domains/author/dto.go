package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxNameLength = 255
	maxBioLength  = 5000
)

// CreateAuthorRequest - POST /api/authors. No identifier: the store
// assigns it.
type CreateAuthorRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Bio       *string `json:"bio,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, maxBioLength),
		),
	)
}

// UpdateAuthorRequest - PUT /api/authors/:id. The body identifier must
// equal the path identifier; a mismatch is a client error.
type UpdateAuthorRequest struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Bio       *string `json:"bio,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, maxBioLength),
		),
	)
}

// AuthorResponse is the read DTO, including nested book summaries.
type AuthorResponse struct {
	ID        int64                 `json:"id"`
	FirstName string                `json:"first_name"`
	LastName  string                `json:"last_name"`
	Bio       *string               `json:"bio,omitempty"`
	Books     []BookSummaryResponse `json:"books"`
}

type BookSummaryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Year  *int   `json:"year,omitempty"`
}

// ToResponse converts the entity to its transfer representation.
func (a *Author) ToResponse() *AuthorResponse {
	books := make([]BookSummaryResponse, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, BookSummaryResponse{ID: b.ID, Title: b.Title, Year: b.Year})
	}
	return &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
		Books:     books,
	}
}

// ToEntity maps the create DTO to an entity with the identifier unset.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
	}
}

// ToEntity maps the update DTO to an entity carrying its identifier.
func (r *UpdateAuthorRequest) ToEntity() *Author {
	return &Author{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
	}
}
