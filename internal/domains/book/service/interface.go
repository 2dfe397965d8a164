package service

import (
	"context"

	authormodel "library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/book/model"
)

// ServiceInterface - book business logic
type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)
	CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// AuthorLookup resolves author references; the author repository satisfies it
type AuthorLookup interface {
	GetByID(ctx context.Context, id int64) (*authormodel.Author, error)
}
