package cities

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

// CreateCity inserts the city along with its state and country associations.
// When a state is given, the state's country wins over the country in the
// payload so a city can never point at a different country than its state.
func (svc *Service) CreateCity(ctx context.Context, city *models.City) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if city.StateID != nil {
			state := &models.State{}
			err := tx.NewSelect().
				Model(state).
				Column("st.country_id").
				Where("st.id = ?", *city.StateID).
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return errcodes.ValidationError("Invalid state ID")
				}
				return errors.WithStack(err)
			}
			city.CountryID = state.CountryID
		}

		_, err := tx.NewInsert().
			Model(city).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if city.ID <= 0 {
			return errors.New("city insert returned an invalid id")
		}

		if city.StateID != nil {
			link := &models.StateCity{StateID: *city.StateID, CityID: city.ID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}

		countryLink := &models.CountryCity{CountryID: city.CountryID, CityID: city.ID}
		if _, err := tx.NewInsert().Model(countryLink).Exec(ctx); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

func (svc *Service) ListCities(ctx context.Context) ([]*models.City, error) {
	var cities []*models.City
	err := svc.db.NewSelect().
		Model(&cities).
		Order("c.name ASC").
		Scan(ctx)
	return cities, errors.WithStack(err)
}

func (svc *Service) RandomCity(ctx context.Context) (*models.City, error) {
	city := &models.City{}
	err := svc.db.NewSelect().
		Model(city).
		Order("c.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("City")
		}
		return nil, errors.WithStack(err)
	}
	return city, nil
}
