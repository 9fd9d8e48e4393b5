package quotes

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

type fixture struct {
	book    *models.Book
	authors []*models.Author
	topics  []*models.Topic
	tags    []*models.Tag
	types   []*models.Type
}

// seedCatalog creates a published book with two linked authors plus two
// topics, tags, and types to attach quotes to.
func seedCatalog(t *testing.T, db *bun.DB) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{}

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

	f.book = &models.Book{Title: "The Dispossessed", PublisherID: publisher.ID}
	_, err = db.NewInsert().Model(f.book).Returning("*").Exec(ctx)
	require.NoError(t, err)

	for _, name := range [][2]string{{"Ursula", "Le Guin"}, {"Jorge", "Borges"}} {
		author := &models.Author{FirstName: name[0], LastName: name[1]}
		_, err := db.NewInsert().Model(author).Returning("*").Exec(ctx)
		require.NoError(t, err)
		f.authors = append(f.authors, author)

		link := &models.BookAuthor{BookID: f.book.ID, AuthorID: author.ID}
		_, err = db.NewInsert().Model(link).Exec(ctx)
		require.NoError(t, err)
	}

	for _, name := range []string{"Freedom", "Society"} {
		topic := &models.Topic{Name: name}
		_, err := db.NewInsert().Model(topic).Returning("*").Exec(ctx)
		require.NoError(t, err)
		f.topics = append(f.topics, topic)
	}
	for _, name := range []string{"favorite", "reread"} {
		tag := &models.Tag{Name: name}
		_, err := db.NewInsert().Model(tag).Returning("*").Exec(ctx)
		require.NoError(t, err)
		f.tags = append(f.tags, tag)
	}
	for _, name := range []string{"aphorism", "dialogue"} {
		typ := &models.Type{Name: name}
		_, err := db.NewInsert().Model(typ).Returning("*").Exec(ctx)
		require.NoError(t, err)
		f.types = append(f.types, typ)
	}

	return f
}

func boolPtr(b bool) *bool { return &b }

func TestService_CreateQuote_DerivesAuthors(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	f := seedCatalog(t, db)

	quote := &models.Quote{
		UserID:      "user-1",
		Text:        "True journey is return.",
		BookID:      f.book.ID,
		IsImportant: boolPtr(true),
		IsPrivate:   boolPtr(false),
	}
	err := svc.CreateQuote(ctx, CreateQuoteOptions{
		Quote:    quote,
		TopicIDs: []int{f.topics[0].ID},
		TagIDs:   []int{f.tags[0].ID, f.tags[1].ID},
	})
	require.NoError(t, err)
	assert.Greater(t, quote.ID, 0)
	assert.False(t, quote.CreatedAt.IsZero())

	// author links come from the book, not the payload
	authorLinks := []*models.QuoteAuthor{}
	err = db.NewSelect().Model(&authorLinks).Where("quote_id = ?", quote.ID).Order("author_id ASC").Scan(ctx)
	require.NoError(t, err)
	require.Len(t, authorLinks, 2)
	assert.Equal(t, f.authors[0].ID, authorLinks[0].AuthorID)
	assert.Equal(t, f.authors[1].ID, authorLinks[1].AuthorID)

	topicCount, err := db.NewSelect().Model((*models.QuoteTopic)(nil)).Where("quote_id = ?", quote.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, topicCount)

	tagCount, err := db.NewSelect().Model((*models.QuoteTag)(nil)).Where("quote_id = ?", quote.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, tagCount)

	typeCount, err := db.NewSelect().Model((*models.QuoteType)(nil)).Where("quote_id = ?", quote.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, typeCount)
}

func TestService_UpdateQuote_ReplacesPresentLinkKinds(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	f := seedCatalog(t, db)

	quote := &models.Quote{
		UserID:      "user-1",
		Text:        "before",
		BookID:      f.book.ID,
		IsImportant: boolPtr(false),
		IsPrivate:   boolPtr(false),
	}
	err := svc.CreateQuote(ctx, CreateQuoteOptions{
		Quote:    quote,
		TopicIDs: []int{f.topics[0].ID},
		TagIDs:   []int{f.tags[0].ID},
	})
	require.NoError(t, err)

	text := "after"
	newTags := []int{f.tags[1].ID}
	updated, err := svc.UpdateQuote(ctx, quote.ID, UpdateQuoteOptions{
		Text:   &text,
		TagIDs: &newTags,
	})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Text)
	assert.NotNil(t, updated.UpdatedAt)

	// tag links were fully replaced
	tagLinks := []*models.QuoteTag{}
	err = db.NewSelect().Model(&tagLinks).Where("quote_id = ?", quote.ID).Scan(ctx)
	require.NoError(t, err)
	require.Len(t, tagLinks, 1)
	assert.Equal(t, f.tags[1].ID, tagLinks[0].TagID)

	// omitted topic links stayed put
	topicLinks := []*models.QuoteTopic{}
	err = db.NewSelect().Model(&topicLinks).Where("quote_id = ?", quote.ID).Scan(ctx)
	require.NoError(t, err)
	require.Len(t, topicLinks, 1)
	assert.Equal(t, f.topics[0].ID, topicLinks[0].TopicID)

	// author links never change on update
	authorCount, err := db.NewSelect().Model((*models.QuoteAuthor)(nil)).Where("quote_id = ?", quote.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, authorCount)
}

func TestService_UpdateQuote_EmptySliceClearsLinks(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	f := seedCatalog(t, db)

	quote := &models.Quote{
		UserID:      "user-1",
		Text:        "text",
		BookID:      f.book.ID,
		IsImportant: boolPtr(false),
		IsPrivate:   boolPtr(false),
	}
	err := svc.CreateQuote(ctx, CreateQuoteOptions{
		Quote:    quote,
		TopicIDs: []int{f.topics[0].ID, f.topics[1].ID},
	})
	require.NoError(t, err)

	empty := []int{}
	_, err = svc.UpdateQuote(ctx, quote.ID, UpdateQuoteOptions{TopicIDs: &empty})
	require.NoError(t, err)

	topicCount, err := db.NewSelect().Model((*models.QuoteTopic)(nil)).Where("quote_id = ?", quote.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, topicCount)
}

func TestService_UpdateQuote_NotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.UpdateQuote(ctx, 123, UpdateQuoteOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.NotFound("Quote"))
}

func TestService_DeleteQuote_CascadesLinks(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	f := seedCatalog(t, db)

	quote := &models.Quote{
		UserID:      "user-1",
		Text:        "text",
		BookID:      f.book.ID,
		IsImportant: boolPtr(false),
		IsPrivate:   boolPtr(false),
	}
	err := svc.CreateQuote(ctx, CreateQuoteOptions{
		Quote:    quote,
		TopicIDs: []int{f.topics[0].ID},
		TagIDs:   []int{f.tags[0].ID},
		TypeIDs:  []int{f.types[0].ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuote(ctx, quote.ID))

	for _, model := range []interface{}{
		(*models.Quote)(nil),
		(*models.QuoteAuthor)(nil),
		(*models.QuoteTopic)(nil),
		(*models.QuoteTag)(nil),
		(*models.QuoteType)(nil),
	} {
		count, err := db.NewSelect().Model(model).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	}
}

func TestService_DeleteQuote_NotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	err := svc.DeleteQuote(ctx, 123)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.NotFound("Quote"))
}

func TestService_RandomQuote(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	f := seedCatalog(t, db)

	first := &models.Quote{UserID: "u", Text: "one", BookID: f.book.ID}
	require.NoError(t, svc.CreateQuote(ctx, CreateQuoteOptions{Quote: first}))
	second := &models.Quote{UserID: "u", Text: "two", BookID: f.book.ID}
	require.NoError(t, svc.CreateQuote(ctx, CreateQuoteOptions{Quote: second}))

	quote, err := svc.RandomQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, quote.ID)
}
