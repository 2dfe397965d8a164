package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared"
	"library-catalog/internal/shared/utils"
)

const (
	MaxTitleLength = 200
)

// Book is a row of the books table joined with its author's name
type Book struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	AuthorID    int64   `json:"author_id" db:"author_id"`

	// AuthorName is read from authors at query time
	AuthorName string `json:"author_name" db:"author_name"`
}

// ========================================
// REQUEST DTOs
// ========================================

// CreateBookRequest - POST /api/v1/books
type CreateBookRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	AuthorID    int64   `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules()...),
		validation.Field(&r.AuthorID, authorIDRules()...),
	)
}

// UpdateBookRequest - PUT /api/v1/books/:id
// Absent keys are left unchanged; "description": null clears the description.
type UpdateBookRequest struct {
	Title       shared.Optional[string]  `json:"title"`
	Description shared.Optional[*string] `json:"description"`
	AuthorID    shared.Optional[int64]   `json:"author_id"`
}

func (r UpdateBookRequest) Validate() error {
	errs := validation.Errors{}
	if r.Title.Set {
		errs["title"] = validation.Validate(r.Title.Value, titleRules()...)
	}
	if r.AuthorID.Set {
		errs["author_id"] = validation.Validate(r.AuthorID.Value, authorIDRules()...)
	}
	return errs.Filter()
}

func (r UpdateBookRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Description.Set && !r.AuthorID.Set
}

// ========================================
// RESPONSE DTOs
// ========================================

// BookResponse is the Book view: {id, title, description, author_id, author_name}
type BookResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	AuthorID    int64   `json:"author_id"`
	AuthorName  string  `json:"author_name"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		AuthorID:    b.AuthorID,
		AuthorName:  b.AuthorName,
	}
}

func titleRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("title is required"),
		validation.By(utils.NotBlank("title")),
		validation.By(utils.MaxRunes(MaxTitleLength)),
	}
}

func authorIDRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("author_id is required"),
		validation.Min(int64(1)).Error("author_id must be a positive integer"),
	}
}
