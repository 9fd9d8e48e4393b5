package quotetypes

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

func (svc *Service) CreateType(ctx context.Context, typ *models.Type) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(typ).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if typ.ID <= 0 {
			return errors.New("type insert returned an invalid id")
		}
		return nil
	})
}

type ListTypesOptions struct {
	Name *string
}

func (svc *Service) ListTypes(ctx context.Context, opts ListTypesOptions) ([]*models.Type, error) {
	var types []*models.Type
	q := svc.db.NewSelect().
		Model(&types).
		Order("ty.name ASC")
	if opts.Name != nil {
		q = q.Where("ty.name = ?", *opts.Name)
	}
	err := q.Scan(ctx)
	return types, errors.WithStack(err)
}

func (svc *Service) RetrieveType(ctx context.Context, id int) (*models.Type, error) {
	typ := &models.Type{}
	err := svc.db.NewSelect().
		Model(typ).
		Where("ty.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Type")
		}
		return nil, errors.WithStack(err)
	}
	return typ, nil
}

func (svc *Service) RandomType(ctx context.Context) (*models.Type, error) {
	typ := &models.Type{}
	err := svc.db.NewSelect().
		Model(typ).
		Order("ty.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Type")
		}
		return nil, errors.WithStack(err)
	}
	return typ, nil
}
