package authors

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

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(author).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if author.ID <= 0 {
			return errors.New("author insert returned an invalid id")
		}
		return nil
	})
}

func (svc *Service) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	var authors []*models.Author
	err := svc.db.NewSelect().
		Model(&authors).
		Order("a.last_name ASC").
		Order("a.first_name ASC").
		Scan(ctx)
	return authors, errors.WithStack(err)
}

func (svc *Service) RetrieveAuthor(ctx context.Context, id int) (*models.Author, error) {
	author := &models.Author{}
	err := svc.db.NewSelect().
		Model(author).
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}
	return author, nil
}

func (svc *Service) RandomAuthor(ctx context.Context) (*models.Author, error) {
	author := &models.Author{}
	err := svc.db.NewSelect().
		Model(author).
		Order("a.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}
	return author, nil
}
