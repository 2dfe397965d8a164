package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared"
	"library-catalog/internal/shared/utils"
)

// Constants for validation, matching the authors table
const (
	MaxNameLength = 100
)

// Author is a row of the authors table plus the derived BookIDs
type Author struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Bio  *string `json:"bio" db:"bio"`

	// BookIDs is computed from books.author_id at read time, never stored
	BookIDs []int64 `json:"book_ids" db:"-"`
}

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules()...),
	)
}

// UpdateAuthorRequest - PUT /api/v1/authors/:id
// Only keys present in the body are applied; "bio": null clears the bio.
type UpdateAuthorRequest struct {
	Name shared.Optional[string]  `json:"name"`
	Bio  shared.Optional[*string] `json:"bio"`
}

func (r UpdateAuthorRequest) Validate() error {
	errs := validation.Errors{}
	if r.Name.Set {
		errs["name"] = validation.Validate(r.Name.Value, nameRules()...)
	}
	return errs.Filter()
}

// IsEmpty reports whether the request changes nothing
func (r UpdateAuthorRequest) IsEmpty() bool {
	return !r.Name.Set && !r.Bio.Set
}

// AuthorResponse is the Author view: {id, name, bio, book_ids}
type AuthorResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Bio     *string `json:"bio"`
	BookIDs []int64 `json:"book_ids"`
}

// ToResponse converts Author to AuthorResponse; book_ids is never null
func (a *Author) ToResponse() *AuthorResponse {
	bookIDs := a.BookIDs
	if bookIDs == nil {
		bookIDs = []int64{}
	}
	return &AuthorResponse{
		ID:      a.ID,
		Name:    a.Name,
		Bio:     a.Bio,
		BookIDs: bookIDs,
	}
}

func nameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("name is required"),
		validation.By(utils.NotBlank("name")),
		validation.By(utils.MaxRunes(MaxNameLength)),
	}
}
