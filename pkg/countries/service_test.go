package countries

import (
	"context"
	"database/sql"
	"testing"

	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/migrations"
	"github.com/quotablebooks/quotable/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestService_CreateCountry(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := &models.Country{Name: "Chile"}
	err := svc.CreateCountry(ctx, country)
	require.NoError(t, err)

	assert.Greater(t, country.ID, 0)
}

func TestService_CreateCountry_DuplicateName(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateCountry(ctx, &models.Country{Name: "Chile"}))

	err := svc.CreateCountry(ctx, &models.Country{Name: "Chile"})
	assert.Error(t, err)
}

func TestService_ListCountries(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateCountry(ctx, &models.Country{Name: "Uruguay"}))
	require.NoError(t, svc.CreateCountry(ctx, &models.Country{Name: "Argentina"}))

	countries, err := svc.ListCountries(ctx)
	require.NoError(t, err)

	require.Len(t, countries, 2)
	assert.Equal(t, "Argentina", countries[0].Name)
	assert.Equal(t, "Uruguay", countries[1].Name)
}

func TestService_RandomCountry(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateCountry(ctx, &models.Country{Name: "Uruguay"}))
	require.NoError(t, svc.CreateCountry(ctx, &models.Country{Name: "Argentina"}))

	// lowest id wins, so the pick is stable across calls
	country, err := svc.RandomCountry(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Uruguay", country.Name)

	again, err := svc.RandomCountry(ctx)
	require.NoError(t, err)
	assert.Equal(t, country.ID, again.ID)
}

func TestService_RandomCountry_Empty(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.RandomCountry(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.NotFound("Country"))
}
