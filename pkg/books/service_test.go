package books

import (
	"context"
	"database/sql"
	"testing"

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

func seedPublisher(t *testing.T, db *bun.DB) *models.Publisher {
	t.Helper()
	ctx := context.Background()

	country := &models.Country{Name: "United States"}
	_, err := db.NewInsert().Model(country).Returning("*").Exec(ctx)
	require.NoError(t, err)
	state := &models.State{Name: "New York", Abbreviation: "NY", CountryID: country.ID}
	_, err = db.NewInsert().Model(state).Returning("*").Exec(ctx)
	require.NoError(t, err)
	city := &models.City{Name: "New York", StateID: &state.ID, CountryID: country.ID}
	_, err = db.NewInsert().Model(city).Returning("*").Exec(ctx)
	require.NoError(t, err)

	publisher := &models.Publisher{Name: "Harper", CityID: city.ID, StateID: state.ID, CountryID: country.ID}
	_, err = db.NewInsert().Model(publisher).Returning("*").Exec(ctx)
	require.NoError(t, err)

	return publisher
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := &models.Author{FirstName: "Ursula", LastName: "Le Guin"}
	_, err := db.NewInsert().Model(author).Returning("*").Exec(ctx)
	require.NoError(t, err)

	genre := &models.Genre{Name: "Science Fiction"}
	_, err = db.NewInsert().Model(genre).Returning("*").Exec(ctx)
	require.NoError(t, err)

	publisher := seedPublisher(t, db)

	book := &models.Book{Title: "The Left Hand of Darkness", PublisherID: publisher.ID}
	err = svc.CreateBook(ctx, CreateBookOptions{
		Book:      book,
		AuthorIDs: []int{author.ID},
		GenreIDs:  []int{genre.ID},
	})
	require.NoError(t, err)
	assert.Greater(t, book.ID, 0)

	authorLinks, err := db.NewSelect().Model((*models.BookAuthor)(nil)).Where("book_id = ?", book.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, authorLinks)

	genreLinks, err := db.NewSelect().Model((*models.BookGenre)(nil)).Where("book_id = ?", book.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, genreLinks)

	publisherLinks := []*models.PublisherBook{}
	err = db.NewSelect().Model(&publisherLinks).Where("book_id = ?", book.ID).Scan(ctx)
	require.NoError(t, err)
	require.Len(t, publisherLinks, 1)
	assert.Equal(t, publisher.ID, publisherLinks[0].PublisherID)
}

func TestService_ListBooks_OrderedByTitle(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	publisher := seedPublisher(t, db)

	require.NoError(t, svc.CreateBook(ctx, CreateBookOptions{Book: &models.Book{Title: "Zen", PublisherID: publisher.ID}}))
	require.NoError(t, svc.CreateBook(ctx, CreateBookOptions{Book: &models.Book{Title: "Anathem", PublisherID: publisher.ID}}))

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)

	require.Len(t, books, 2)
	assert.Equal(t, "Anathem", books[0].Title)
	assert.Equal(t, "Zen", books[1].Title)
}

func TestService_RandomBook(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	publisher := seedPublisher(t, db)

	first := &models.Book{Title: "Zen", PublisherID: publisher.ID}
	require.NoError(t, svc.CreateBook(ctx, CreateBookOptions{Book: first}))
	require.NoError(t, svc.CreateBook(ctx, CreateBookOptions{Book: &models.Book{Title: "Anathem", PublisherID: publisher.ID}}))

	book, err := svc.RandomBook(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, book.ID)
}
