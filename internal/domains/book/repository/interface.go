package repository

import (
	"context"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface - data access for the books table. Every returned Book
// carries the current name of its author.
type RepositoryInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)

	// CreateBook errors: ErrDuplicateTitle, ErrUnknownAuthor
	CreateBook(ctx context.Context, book *model.Book) (*model.Book, error)

	// UpdateBook writes the present fields only.
	// Errors: ErrBookNotFound, ErrDuplicateTitle, ErrUnknownAuthor
	UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error)

	DeleteBook(ctx context.Context, id int64) error

	// ListByAuthor returns an author's books in ascending id order
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)

	// ListIDsByAuthor returns the ids of an author's books in ascending order
	ListIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error)

	// ListIDsByAuthors groups book ids by author; authors without books are absent
	ListIDsByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]int64, error)
}
