package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/infrastructure/database/dbtest"
	"library-catalog/internal/shared"
)

func TestPostgresRepository_Books(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO authors (name) VALUES ('Лев Толстой'), ('Антон Чехов')`)
	require.NoError(t, err)

	war, err := repo.CreateBook(ctx, &model.Book{Title: "Война и мир", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), war.ID)
	assert.Equal(t, "Лев Толстой", war.AuthorName)

	_, err = repo.CreateBook(ctx, &model.Book{Title: "Война и мир", AuthorID: 2})
	assert.ErrorIs(t, err, model.ErrDuplicateTitle)

	_, err = repo.CreateBook(ctx, &model.Book{Title: "Ghost", AuthorID: 999})
	assert.ErrorIs(t, err, model.ErrUnknownAuthor)

	anna, err := repo.CreateBook(ctx, &model.Book{Title: "Анна Каренина", AuthorID: 1, Description: shared.Ptr("Роман")})
	require.NoError(t, err)
	_, err = repo.CreateBook(ctx, &model.Book{Title: "Вишнёвый сад", AuthorID: 2})
	require.NoError(t, err)

	ids, err := repo.ListIDsByAuthor(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{war.ID, anna.ID}, ids)

	none, err := repo.ListIDsByAuthor(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{}, none)

	grouped, err := repo.ListIDsByAuthors(ctx, []int64{1, 2, 42})
	require.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)

	all, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Антон Чехов", all[2].AuthorName)
}

func TestPostgresRepository_UpdateBook(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO authors (name) VALUES ('First'), ('Second')`)
	require.NoError(t, err)
	book, err := repo.CreateBook(ctx, &model.Book{Title: "Original", AuthorID: 1, Description: shared.Ptr("desc")})
	require.NoError(t, err)
	_, err = repo.CreateBook(ctx, &model.Book{Title: "Other", AuthorID: 1})
	require.NoError(t, err)

	updated, err := repo.UpdateBook(ctx, book.ID, &model.UpdateBookRequest{AuthorID: shared.Some(int64(2))})
	require.NoError(t, err)
	assert.Equal(t, "Second", updated.AuthorName)
	assert.Equal(t, "Original", updated.Title)
	require.NotNil(t, updated.Description)

	updated, err = repo.UpdateBook(ctx, book.ID, &model.UpdateBookRequest{Description: shared.Some[*string](nil)})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)

	_, err = repo.UpdateBook(ctx, book.ID, &model.UpdateBookRequest{Title: shared.Some("Other")})
	assert.ErrorIs(t, err, model.ErrDuplicateTitle)

	_, err = repo.UpdateBook(ctx, book.ID, &model.UpdateBookRequest{AuthorID: shared.Some(int64(999))})
	assert.ErrorIs(t, err, model.ErrUnknownAuthor)

	_, err = repo.UpdateBook(ctx, 999, &model.UpdateBookRequest{Title: shared.Some("Nope")})
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	require.NoError(t, repo.DeleteBook(ctx, book.ID))
	assert.ErrorIs(t, repo.DeleteBook(ctx, book.ID), model.ErrBookNotFound)
}

func TestPostgresRepository_ListByAuthor(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO authors (name) VALUES ('Фёдор Достоевский'), ('Иван Тургенев')`)
	require.NoError(t, err)
	crime, err := repo.CreateBook(ctx, &model.Book{Title: "Преступление и наказание", AuthorID: 1})
	require.NoError(t, err)
	_, err = repo.CreateBook(ctx, &model.Book{Title: "Отцы и дети", AuthorID: 2})
	require.NoError(t, err)
	idiot, err := repo.CreateBook(ctx, &model.Book{Title: "Идиот", AuthorID: 1, Description: shared.Ptr("Роман")})
	require.NoError(t, err)

	books, err := repo.ListByAuthor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, crime.ID, books[0].ID)
	assert.Equal(t, idiot.ID, books[1].ID)
	for _, b := range books {
		assert.Equal(t, int64(1), b.AuthorID)
		assert.Equal(t, "Фёдор Достоевский", b.AuthorName)
	}
	require.NotNil(t, books[1].Description)
	assert.Equal(t, "Роман", *books[1].Description)

	none, err := repo.ListByAuthor(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
