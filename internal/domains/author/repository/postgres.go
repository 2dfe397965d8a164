package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/infrastructure/database"
)

const (
	tableAuthors = "authors"
	colID        = "id"
	colName      = "name"
	colBio       = "bio"
)

var dialect = goqu.Dialect("postgres")

// postgresRepository implements RepositoryInterface on a pgx pool. Each call
// borrows a pooled connection for the duration of one statement.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Create inserts a new author; the unique constraint decides name collisions
func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, bio)
        VALUES ($1, $2)
        RETURNING id, name, bio
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Bio).Scan(
		&created.ID,
		&created.Name,
		&created.Bio,
	)
	if err != nil {
		if database.IsUniqueViolation(err, database.ConstraintAuthorName) {
			return nil, model.ErrDuplicateName.Wrap(err)
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

// GetByID retrieves one author
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, bio
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// List retrieves every author ordered by id
func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, name, bio
        FROM authors
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// Update writes only the fields present in req
func (r *postgresRepository) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
	record := goqu.Record{}
	if req.Name.Set {
		record[colName] = req.Name.Value
	}
	if req.Bio.Set {
		if req.Bio.Value == nil {
			record[colBio] = nil
		} else {
			record[colBio] = *req.Bio.Value
		}
	}
	if len(record) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := dialect.Update(tableAuthors).
		Prepared(true).
		Set(record).
		Where(goqu.C(colID).Eq(id)).
		Returning(colID, colName, colBio).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build author update: %w", err)
	}

	var updated model.Author
	err = r.pool.QueryRow(ctx, query, args...).Scan(&updated.ID, &updated.Name, &updated.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		if database.IsUniqueViolation(err, database.ConstraintAuthorName) {
			return nil, model.ErrDuplicateName.Wrap(err)
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

// Delete removes author by ID
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err, database.ConstraintBookAuthorFK) {
			return model.ErrAuthorHasBooks.Wrap(err)
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}
