package states

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

func seedCountry(t *testing.T, db *bun.DB) *models.Country {
	t.Helper()

	country := &models.Country{Name: "United States"}
	_, err := db.NewInsert().Model(country).Returning("*").Exec(context.Background())
	require.NoError(t, err)

	return country
}

func TestService_CreateState(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := seedCountry(t, db)

	state := &models.State{Name: "Oregon", Abbreviation: "OR", CountryID: country.ID}
	require.NoError(t, svc.CreateState(ctx, state))

	assert.Greater(t, state.ID, 0)

	links := []*models.CountryState{}
	err := db.NewSelect().Model(&links).Where("state_id = ?", state.ID).Scan(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, country.ID, links[0].CountryID)
}

func TestService_ListStates_OrderedByName(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := seedCountry(t, db)

	require.NoError(t, svc.CreateState(ctx, &models.State{Name: "Washington", Abbreviation: "WA", CountryID: country.ID}))
	require.NoError(t, svc.CreateState(ctx, &models.State{Name: "California", Abbreviation: "CA", CountryID: country.ID}))

	states, err := svc.ListStates(ctx)
	require.NoError(t, err)

	require.Len(t, states, 2)
	assert.Equal(t, "California", states[0].Name)
	assert.Equal(t, "Washington", states[1].Name)
}

func TestService_RetrieveState(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := seedCountry(t, db)

	state := &models.State{Name: "Oregon", Abbreviation: "OR", CountryID: country.ID}
	require.NoError(t, svc.CreateState(ctx, state))

	found, err := svc.RetrieveState(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oregon", found.Name)
	assert.Equal(t, country.ID, found.CountryID)

	_, err = svc.RetrieveState(ctx, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.NotFound("State"))
}
