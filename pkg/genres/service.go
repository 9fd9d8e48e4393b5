package genres

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

func (svc *Service) CreateGenre(ctx context.Context, genre *models.Genre) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(genre).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if genre.ID <= 0 {
			return errors.New("genre insert returned an invalid id")
		}
		return nil
	})
}

func (svc *Service) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	var genres []*models.Genre
	err := svc.db.NewSelect().
		Model(&genres).
		Order("g.name ASC").
		Scan(ctx)
	return genres, errors.WithStack(err)
}

func (svc *Service) RetrieveGenre(ctx context.Context, id int) (*models.Genre, error) {
	genre := &models.Genre{}
	err := svc.db.NewSelect().
		Model(genre).
		Where("g.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Genre")
		}
		return nil, errors.WithStack(err)
	}
	return genre, nil
}

// RandomGenre returns the first genre ordered by id ascending, matching the
// other catalog random endpoints.
func (svc *Service) RandomGenre(ctx context.Context) (*models.Genre, error) {
	genre := &models.Genre{}
	err := svc.db.NewSelect().
		Model(genre).
		Order("g.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Genre")
		}
		return nil, errors.WithStack(err)
	}
	return genre, nil
}
