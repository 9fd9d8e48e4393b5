package cities

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

func seedCountryAndState(t *testing.T, db *bun.DB) (*models.Country, *models.State) {
	t.Helper()
	ctx := context.Background()

	country := &models.Country{Name: "United States"}
	_, err := db.NewInsert().Model(country).Returning("*").Exec(ctx)
	require.NoError(t, err)

	state := &models.State{Name: "Oregon", Abbreviation: "OR", CountryID: country.ID}
	_, err = db.NewInsert().Model(state).Returning("*").Exec(ctx)
	require.NoError(t, err)

	return country, state
}

func TestService_CreateCity_WithState(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country, state := seedCountryAndState(t, db)

	other := &models.Country{Name: "Canada"}
	_, err := db.NewInsert().Model(other).Returning("*").Exec(ctx)
	require.NoError(t, err)

	// payload claims the wrong country, the state's country must win
	city := &models.City{Name: "Portland", StateID: &state.ID, CountryID: other.ID}
	require.NoError(t, svc.CreateCity(ctx, city))

	assert.Greater(t, city.ID, 0)
	assert.Equal(t, country.ID, city.CountryID)

	stateLinks, err := db.NewSelect().Model((*models.StateCity)(nil)).Where("city_id = ?", city.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stateLinks)

	countryLinks := []*models.CountryCity{}
	err = db.NewSelect().Model(&countryLinks).Where("city_id = ?", city.ID).Scan(ctx)
	require.NoError(t, err)
	require.Len(t, countryLinks, 1)
	assert.Equal(t, country.ID, countryLinks[0].CountryID)
}

func TestService_CreateCity_WithoutState(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := &models.Country{Name: "Iceland"}
	_, err := db.NewInsert().Model(country).Returning("*").Exec(ctx)
	require.NoError(t, err)

	city := &models.City{Name: "Reykjavik", CountryID: country.ID}
	require.NoError(t, svc.CreateCity(ctx, city))

	assert.Nil(t, city.StateID)
	assert.Equal(t, country.ID, city.CountryID)

	stateLinks, err := db.NewSelect().Model((*models.StateCity)(nil)).Where("city_id = ?", city.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stateLinks)

	countryLinks, err := db.NewSelect().Model((*models.CountryCity)(nil)).Where("city_id = ?", city.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, countryLinks)
}

func TestService_CreateCity_InvalidState(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := &models.Country{Name: "Iceland"}
	_, err := db.NewInsert().Model(country).Returning("*").Exec(ctx)
	require.NoError(t, err)

	missingState := 999
	city := &models.City{Name: "Nowhere", StateID: &missingState, CountryID: country.ID}
	err = svc.CreateCity(ctx, city)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.ValidationError("Invalid state ID"))

	// the failed create must leave nothing behind
	count, err := db.NewSelect().Model((*models.City)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestService_ListCities(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := &models.Country{Name: "Iceland"}
	_, err := db.NewInsert().Model(country).Returning("*").Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CreateCity(ctx, &models.City{Name: "Vik", CountryID: country.ID}))
	require.NoError(t, svc.CreateCity(ctx, &models.City{Name: "Akureyri", CountryID: country.ID}))

	cities, err := svc.ListCities(ctx)
	require.NoError(t, err)

	require.Len(t, cities, 2)
	assert.Equal(t, "Akureyri", cities[0].Name)
	assert.Equal(t, "Vik", cities[1].Name)
}
