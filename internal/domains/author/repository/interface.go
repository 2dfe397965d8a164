package repository

import (
	"context"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface is row-level access to the authors table. Constraint
// violations come back as model errors, never as raw pgx errors.
type RepositoryInterface interface {
	// Create inserts a new author. Errors: ErrDuplicateName
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID returns ErrAuthorNotFound when absent
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// List returns every author ordered by id
	List(ctx context.Context) ([]model.Author, error)

	// Update applies the present fields in one statement.
	// Errors: ErrAuthorNotFound, ErrDuplicateName
	Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete removes the author. The books foreign key is re-checked by the
	// database, so a book inserted after the service guard surfaces as
	// ErrAuthorHasBooks. Errors: ErrAuthorNotFound, ErrAuthorHasBooks
	Delete(ctx context.Context, id int64) error
}
