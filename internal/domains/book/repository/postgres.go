package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/infrastructure/database"
)

const (
	tableBooks     = "books"
	colID          = "id"
	colTitle       = "title"
	colDescription = "description"
	colAuthorID    = "author_id"

	// authorNameExpr resolves the author's name for a books row
	authorNameExpr = "(SELECT a.name FROM authors a WHERE a.id = books.author_id)"
)

var dialect = goqu.Dialect("postgres")

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*model.Book, error) {
	var b model.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.AuthorName); err != nil {
		return nil, err
	}
	return &b, nil
}

// translateWriteError maps constraint violations on insert/update
func translateWriteError(err error) error {
	switch {
	case database.IsUniqueViolation(err, database.ConstraintBookTitle):
		return model.ErrDuplicateTitle.Wrap(err)
	case database.IsForeignKeyViolation(err, database.ConstraintBookAuthorFK):
		return model.ErrUnknownAuthor.Wrap(err)
	default:
		return nil
	}
}

const selectBooks = `
        SELECT b.id, b.title, b.description, b.author_id, a.name
        FROM books b
        JOIN authors a ON a.id = b.author_id
    `

func (r *postgresRepository) ListBooks(ctx context.Context) ([]model.Book, error) {
	return r.queryBooks(ctx, selectBooks+` ORDER BY b.id`)
}

// ListByAuthor returns an author's books ordered by id; unknown authors yield an empty slice
func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	return r.queryBooks(ctx, selectBooks+` WHERE b.author_id = $1 ORDER BY b.id`, authorID)
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, selectBooks+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, description, author_id)
        VALUES ($1, $2, $3)
        RETURNING id, title, description, author_id, ` + authorNameExpr

	created, err := scanBook(r.pool.QueryRow(ctx, query, book.Title, book.Description, book.AuthorID))
	if err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	record := goqu.Record{}
	if req.Title.Set {
		record[colTitle] = req.Title.Value
	}
	if req.Description.Set {
		if req.Description.Value == nil {
			record[colDescription] = nil
		} else {
			record[colDescription] = *req.Description.Value
		}
	}
	if req.AuthorID.Set {
		record[colAuthorID] = req.AuthorID.Value
	}
	if len(record) == 0 {
		return r.GetBookByID(ctx, id)
	}

	query, args, err := dialect.Update(tableBooks).
		Prepared(true).
		Set(record).
		Where(goqu.C(colID).Eq(id)).
		Returning(colID, colTitle, colDescription, colAuthorID, goqu.L(authorNameExpr)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book update: %w", err)
	}

	updated, err := scanBook(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if mapped := translateWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) DeleteBook(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) ListIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM books WHERE author_id = $1 ORDER BY id`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect book ids: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (r *postgresRepository) ListIDsByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64)
	if len(authorIDs) == 0 {
		return result, nil
	}

	query, args, err := dialect.From(tableBooks).
		Prepared(true).
		Select(colID, colAuthorID).
		Where(goqu.C(colAuthorID).In(authorIDs)).
		Order(goqu.C(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book id query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query book ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, authorID int64
		if err := rows.Scan(&id, &authorID); err != nil {
			return nil, fmt.Errorf("failed to scan book id: %w", err)
		}
		result[authorID] = append(result[authorID], id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book ids: %w", err)
	}

	return result, nil
}
