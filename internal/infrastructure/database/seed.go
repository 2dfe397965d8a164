package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	txdb "library-catalog/pkg/database"
)

type seedAuthor struct {
	Name  string
	Bio   string
	Books []seedBook
}

type seedBook struct {
	Title       string
	Description string
}

var seedCatalog = []seedAuthor{
	{
		Name: "Лев Толстой",
		Bio:  "Русский писатель, один из величайших авторов в истории литературы.",
		Books: []seedBook{
			{Title: "Война и мир", Description: "Эпический роман об истории России во время наполеоновских войн."},
			{Title: "Анна Каренина", Description: "Роман о трагической любви и судьбе женщины в российском обществе."},
		},
	},
	{
		Name: "Фёдор Достоевский",
		Bio:  "Русский писатель, мыслитель, философ и публицист.",
		Books: []seedBook{
			{Title: "Преступление и наказание", Description: "Роман о внутренней борьбе молодого человека после совершения преступления."},
			{Title: "Идиот", Description: "Роман о намерении человека быть полностью искренним в обществе лицемеров."},
		},
	},
	{
		Name: "Джейн Остин",
		Bio:  "Английская писательница, одна из величайших романисток в истории.",
		Books: []seedBook{
			{Title: "Гордость и предубеждение", Description: "Роман о любви и социальных предрассудках в английском обществе XVIII века."},
		},
	},
	{
		Name: "Марк Твен",
		Bio:  "Американский писатель, журналист и общественный деятель.",
		Books: []seedBook{
			{Title: "Том Сойер", Description: "Приключения юного Тома Сойера на берегах реки Миссисипи."},
		},
	},
}

// SeedResult reports what Seed inserted
type SeedResult struct {
	Authors int
	Books   int
	Skipped bool
}

// Seed inserts the starter catalog in one transaction. It does nothing when
// the authors table already has rows.
func Seed(ctx context.Context, db txdb.TxBeginner) (SeedResult, error) {
	return txdb.WithTransactionResult(ctx, db, func(tx pgx.Tx) (SeedResult, error) {
		var count int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
			return SeedResult{}, fmt.Errorf("failed to count authors: %w", err)
		}
		if count > 0 {
			log.Info().Int64("authors", count).Msg("[SEED] Catalog not empty, skipping")
			return SeedResult{Skipped: true}, nil
		}

		var res SeedResult
		for _, a := range seedCatalog {
			var authorID int64
			err := tx.QueryRow(ctx,
				`INSERT INTO authors (name, bio) VALUES ($1, $2) RETURNING id`,
				a.Name, a.Bio,
			).Scan(&authorID)
			if err != nil {
				return SeedResult{}, fmt.Errorf("failed to insert author %q: %w", a.Name, err)
			}
			res.Authors++

			for _, b := range a.Books {
				_, err := tx.Exec(ctx,
					`INSERT INTO books (title, description, author_id) VALUES ($1, $2, $3)`,
					b.Title, b.Description, authorID,
				)
				if err != nil {
					return SeedResult{}, fmt.Errorf("failed to insert book %q: %w", b.Title, err)
				}
				res.Books++
			}
		}

		log.Info().Int("authors", res.Authors).Int("books", res.Books).Msg("[SEED] Catalog seeded")
		return res, nil
	})
}
