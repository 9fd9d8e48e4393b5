package books

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

type CreateBookOptions struct {
	Book      *models.Book
	AuthorIDs []int
	GenreIDs  []int
}

// CreateBook inserts the book and its author, publisher, and genre
// associations in one transaction.
func (svc *Service) CreateBook(ctx context.Context, opts CreateBookOptions) error {
	book := opts.Book
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if book.ID <= 0 {
			return errors.New("book insert returned an invalid id")
		}

		for _, authorID := range opts.AuthorIDs {
			link := &models.BookAuthor{BookID: book.ID, AuthorID: authorID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}

		if book.PublisherID > 0 {
			link := &models.PublisherBook{PublisherID: book.PublisherID, BookID: book.ID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}

		for _, genreID := range opts.GenreIDs {
			link := &models.BookGenre{BookID: book.ID, GenreID: genreID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	})
}

func (svc *Service) ListBooks(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book
	err := svc.db.NewSelect().
		Model(&books).
		Order("b.title ASC").
		Scan(ctx)
	return books, errors.WithStack(err)
}

func (svc *Service) RandomBook(ctx context.Context) (*models.Book, error) {
	book := &models.Book{}
	err := svc.db.NewSelect().
		Model(book).
		Order("b.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}
	return book, nil
}
