package service

import (
	"context"

	"library-catalog/internal/domains/author/model"
	bookmodel "library-catalog/internal/domains/book/model"
)

// =====================================================
// AUTHOR SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// Create validates and inserts a new author
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// GetByID returns the author with its current book ids
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// List returns every author with book ids, ordered by id
	List(ctx context.Context) ([]model.Author, error)

	// Update applies a partial update; an empty request returns the author unchanged
	Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete removes an author that no book references
	Delete(ctx context.Context, id int64) error
}

// BookLister answers which books reference an author. It is implemented by
// the book repository; authors never own or cascade to books.
type BookLister interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]bookmodel.Book, error)
	ListIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error)
	ListIDsByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]int64, error)
}
