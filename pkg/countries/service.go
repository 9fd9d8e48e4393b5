package countries

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

func (svc *Service) CreateCountry(ctx context.Context, country *models.Country) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(country).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if country.ID <= 0 {
			return errors.New("country insert returned an invalid id")
		}
		return nil
	})
}

func (svc *Service) ListCountries(ctx context.Context) ([]*models.Country, error) {
	var countries []*models.Country
	err := svc.db.NewSelect().
		Model(&countries).
		Order("co.name ASC").
		Scan(ctx)
	return countries, errors.WithStack(err)
}

// RandomCountry returns the first country ordered by id ascending. The
// endpoint predates real randomization and clients rely on the deterministic
// pick.
func (svc *Service) RandomCountry(ctx context.Context) (*models.Country, error) {
	country := &models.Country{}
	err := svc.db.NewSelect().
		Model(country).
		Order("co.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Country")
		}
		return nil, errors.WithStack(err)
	}
	return country, nil
}
