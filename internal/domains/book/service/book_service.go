package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	authormodel "library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
	"library-catalog/internal/shared/apperror"
)

type BookService struct {
	repo    repository.RepositoryInterface
	authors AuthorLookup
}

// NewService - Constructor with DI
func NewService(repo repository.RepositoryInterface, authors AuthorLookup) ServiceInterface {
	return &BookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *BookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *BookService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetBookByID(ctx, id)
}

// ListByAuthor returns the books of an existing author; a missing author is NotFound
func (s *BookService) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *BookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	// 1. Validate input
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	// 2. Author must exist; the foreign key re-checks it on insert
	if err := s.ensureAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	// 3. Insert
	book, err := s.repo.CreateBook(ctx, &model.Book{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", book.ID).Int64("author_id", book.AuthorID).Msg("Book created")
	return book, nil
}

func (s *BookService) UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	// 1. Validate present fields
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	// 2. Nothing to change
	if req.IsEmpty() {
		return s.repo.GetBookByID(ctx, id)
	}

	// 3. A missing book is reported before a bad author reference
	if req.AuthorID.Set {
		if _, err := s.repo.GetBookByID(ctx, id); err != nil {
			return nil, err
		}
		if err := s.ensureAuthor(ctx, req.AuthorID.Value); err != nil {
			return nil, err
		}
	}

	// 4. Save changes
	book, err := s.repo.UpdateBook(ctx, id, req)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", id).Msg("Book updated")
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("book_id", id).Msg("Book deleted")
	return nil
}

func (s *BookService) ensureAuthor(ctx context.Context, authorID int64) error {
	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			return model.ErrUnknownAuthor
		}
		return err
	}
	return nil
}
