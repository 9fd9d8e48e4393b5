package tags

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

func (svc *Service) CreateTag(ctx context.Context, tag *models.Tag) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(tag).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if tag.ID <= 0 {
			return errors.New("tag insert returned an invalid id")
		}
		return nil
	})
}

type ListTagsOptions struct {
	Name *string
}

func (svc *Service) ListTags(ctx context.Context, opts ListTagsOptions) ([]*models.Tag, error) {
	var tags []*models.Tag
	q := svc.db.NewSelect().
		Model(&tags).
		Order("t.name ASC")
	if opts.Name != nil {
		q = q.Where("t.name = ?", *opts.Name)
	}
	err := q.Scan(ctx)
	return tags, errors.WithStack(err)
}

func (svc *Service) RetrieveTag(ctx context.Context, id int) (*models.Tag, error) {
	tag := &models.Tag{}
	err := svc.db.NewSelect().
		Model(tag).
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Tag")
		}
		return nil, errors.WithStack(err)
	}
	return tag, nil
}

func (svc *Service) RandomTag(ctx context.Context) (*models.Tag, error) {
	tag := &models.Tag{}
	err := svc.db.NewSelect().
		Model(tag).
		Order("t.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Tag")
		}
		return nil, errors.WithStack(err)
	}
	return tag, nil
}
