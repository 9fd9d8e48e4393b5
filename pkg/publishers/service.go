package publishers

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

// CreatePublisher inserts the publisher with state_id and country_id copied
// from the referenced city. The city must exist and must belong to a state; the
// checks run before any write so a failed create leaves nothing behind.
func (svc *Service) CreatePublisher(ctx context.Context, publisher *models.Publisher) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		city := &models.City{}
		err := tx.NewSelect().
			Model(city).
			Column("c.state_id", "c.country_id").
			Where("c.id = ?", publisher.CityID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errcodes.NotFound("City")
			}
			return errors.WithStack(err)
		}
		if city.StateID == nil {
			return errcodes.ValidationError("City does not have a related state.")
		}

		publisher.StateID = *city.StateID
		publisher.CountryID = city.CountryID

		_, err = tx.NewInsert().
			Model(publisher).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if publisher.ID <= 0 {
			return errors.New("publisher insert returned an invalid id")
		}

		link := &models.PublisherCity{PublisherID: publisher.ID, CityID: publisher.CityID}
		if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

func (svc *Service) ListPublishers(ctx context.Context) ([]*models.Publisher, error) {
	var publishers []*models.Publisher
	err := svc.db.NewSelect().
		Model(&publishers).
		Order("pub.name ASC").
		Scan(ctx)
	return publishers, errors.WithStack(err)
}

func (svc *Service) RandomPublisher(ctx context.Context) (*models.Publisher, error) {
	publisher := &models.Publisher{}
	err := svc.db.NewSelect().
		Model(publisher).
		Order("pub.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Publisher")
		}
		return nil, errors.WithStack(err)
	}
	return publisher, nil
}
