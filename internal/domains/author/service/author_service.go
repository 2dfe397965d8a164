package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	"library-catalog/internal/shared/apperror"
)

// authorService implements ServiceInterface
type authorService struct {
	repo  repository.RepositoryInterface
	books BookLister
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface, books BookLister) ServiceInterface {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	a, err := s.repo.Create(ctx, &model.Author{
		Name: req.Name,
		Bio:  req.Bio,
	})
	if err != nil {
		return nil, err
	}
	a.BookIDs = []int64{}

	log.Info().Int64("author_id", a.ID).Str("name", a.Name).Msg("Author created")
	return a, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.BookIDs, err = s.books.ListIDsByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return authors, nil
	}

	ids := make([]int64, len(authors))
	for i := range authors {
		ids[i] = authors[i].ID
	}

	// one query for all authors instead of one per author
	byAuthor, err := s.books.ListIDsByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		authors[i].BookIDs = byAuthor[authors[i].ID]
		if authors[i].BookIDs == nil {
			authors[i].BookIDs = []int64{}
		}
	}

	return authors, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}
	if req.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	a, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	a.BookIDs, err = s.books.ListIDsByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", id).Msg("Author updated")
	return a, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	books, err := s.books.ListByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		bookIDs := make([]int64, len(books))
		for i, b := range books {
			bookIDs[i] = b.ID
		}
		return model.ErrAuthorHasBooks.WithDetails(map[string]any{"book_ids": bookIDs})
	}

	// the foreign key still rejects a book attached after the check above
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("Author deleted")
	return nil
}
