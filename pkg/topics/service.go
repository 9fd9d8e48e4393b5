package topics

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

func (svc *Service) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(topic).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if topic.ID <= 0 {
			return errors.New("topic insert returned an invalid id")
		}
		return nil
	})
}

type ListTopicsOptions struct {
	Name *string
}

func (svc *Service) ListTopics(ctx context.Context, opts ListTopicsOptions) ([]*models.Topic, error) {
	var topics []*models.Topic
	q := svc.db.NewSelect().
		Model(&topics).
		Order("tp.name ASC")
	if opts.Name != nil {
		q = q.Where("tp.name = ?", *opts.Name)
	}
	err := q.Scan(ctx)
	return topics, errors.WithStack(err)
}

func (svc *Service) RetrieveTopic(ctx context.Context, id int) (*models.Topic, error) {
	topic := &models.Topic{}
	err := svc.db.NewSelect().
		Model(topic).
		Where("tp.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Topic")
		}
		return nil, errors.WithStack(err)
	}
	return topic, nil
}

func (svc *Service) RandomTopic(ctx context.Context) (*models.Topic, error) {
	topic := &models.Topic{}
	err := svc.db.NewSelect().
		Model(topic).
		Order("tp.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Topic")
		}
		return nil, errors.WithStack(err)
	}
	return topic, nil
}
