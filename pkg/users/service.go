package users

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
	"github.com/uptrace/bun"
)

// Service maintains the local mirror of identity-provider users. Rows are only
// written from provider webhooks; the application itself never creates users.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

type CreateUserOptions struct {
	ExternalID string
	Email      string
	Name       string
	Image      string
}

// CreateUser inserts a mirror row for a newly provisioned provider user. The
// local id is a fresh UUID, distinct from the provider's id.
func (svc *Service) CreateUser(ctx context.Context, opts CreateUserOptions) (*models.User, error) {
	user := &models.User{
		ID:         uuid.NewString(),
		ExternalID: &opts.ExternalID,
		Email:      opts.Email,
		Name:       &opts.Name,
		Image:      &opts.Image,
	}

	_, err := svc.db.NewInsert().
		Model(user).
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

type UpdateUserOptions struct {
	Email string
	Name  string
	Image string
}

// UpdateUserByExternalID refreshes the mirror row for the given provider user.
func (svc *Service) UpdateUserByExternalID(ctx context.Context, externalID string, opts UpdateUserOptions) (*models.User, error) {
	user, err := svc.RetrieveUser(ctx, RetrieveUserOptions{ExternalID: &externalID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user.Email = opts.Email
	user.Name = &opts.Name
	user.Image = &opts.Image

	_, err = svc.db.NewUpdate().
		Model(user).
		Column("email", "name", "image").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// DeleteUserByExternalID removes the mirror row and returns it so callers can
// still reference the local id after the delete.
func (svc *Service) DeleteUserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	user, err := svc.RetrieveUser(ctx, RetrieveUserOptions{ExternalID: &externalID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	_, err = svc.db.NewDelete().
		Model(user).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

type RetrieveUserOptions struct {
	ID         *string
	ExternalID *string
}

func (svc *Service) RetrieveUser(ctx context.Context, opts RetrieveUserOptions) (*models.User, error) {
	user := &models.User{}
	q := svc.db.NewSelect().Model(user)
	if opts.ID != nil {
		q = q.Where("u.id = ?", *opts.ID)
	}
	if opts.ExternalID != nil {
		q = q.Where("u.external_id = ?", *opts.ExternalID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errors.WithStack(err)
	}
	return user, nil
}
