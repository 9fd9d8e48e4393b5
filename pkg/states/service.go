package states

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

// CreateState inserts the state and, when a country is given, the country
// association in the same transaction.
func (svc *Service) CreateState(ctx context.Context, state *models.State) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(state).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if state.ID <= 0 {
			return errors.New("state insert returned an invalid id")
		}

		if state.CountryID > 0 {
			link := &models.CountryState{CountryID: state.CountryID, StateID: state.ID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	})
}

func (svc *Service) ListStates(ctx context.Context) ([]*models.State, error) {
	var states []*models.State
	err := svc.db.NewSelect().
		Model(&states).
		Order("st.name ASC").
		Scan(ctx)
	return states, errors.WithStack(err)
}

// RetrieveState is also what backs the country lookup endpoint, which has
// always returned the state row itself rather than the joined country, and
// clients depend on that shape.
func (svc *Service) RetrieveState(ctx context.Context, id int) (*models.State, error) {
	state := &models.State{}
	err := svc.db.NewSelect().
		Model(state).
		Where("st.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("State")
		}
		return nil, errors.WithStack(err)
	}
	return state, nil
}

func (svc *Service) RandomState(ctx context.Context) (*models.State, error) {
	state := &models.State{}
	err := svc.db.NewSelect().
		Model(state).
		Order("st.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("State")
		}
		return nil, errors.WithStack(err)
	}
	return state, nil
}
