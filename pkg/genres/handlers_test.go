package genres

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/quotablebooks/quotable/pkg/binder"
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

func newGenresTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerCreate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	h := &handler{genreService: NewService(db)}

	c, rr := newGenresTestContext(t, http.MethodPost, "/genres", `{"name":"Science Fiction","description":"Imagined futures."}`)

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":`)

	genres, err := h.genreService.ListGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Science Fiction", genres[0].Name)
}

func TestHandlerCreate_MissingName(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	h := &handler{genreService: NewService(db)}

	c, _ := newGenresTestContext(t, http.MethodPost, "/genres", `{"description":"No name."}`)

	err := h.create(c)
	require.Error(t, err)

	codeErr := &errcodes.Error{}
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnprocessableEntity, codeErr.HTTPCode)
}

func TestHandlerCreate_UnknownField(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	h := &handler{genreService: NewService(db)}

	c, _ := newGenresTestContext(t, http.MethodPost, "/genres", `{"name":"Poetry","description":"d","nope":true}`)

	err := h.create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.UnknownParameter("nope"))
}

func TestHandlerRetrieve(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	h := &handler{genreService: NewService(db)}
	ctx := context.Background()

	genre := &models.Genre{Name: "Poetry"}
	require.NoError(t, h.genreService.CreateGenre(ctx, genre))

	c, rr := newGenresTestContext(t, http.MethodGet, "/genres/"+strconv.Itoa(genre.ID), "")
	c.SetPath("/genres/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(genre.ID))

	err := h.retrieve(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Poetry")
}

func TestHandlerRetrieve_NotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	h := &handler{genreService: NewService(db)}

	c, _ := newGenresTestContext(t, http.MethodGet, "/genres/999", "")
	c.SetPath("/genres/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.retrieve(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}

func TestHandlerRetrieve_NonNumericID(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	h := &handler{genreService: NewService(db)}

	c, _ := newGenresTestContext(t, http.MethodGet, "/genres/abc", "")
	c.SetPath("/genres/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.retrieve(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.NotFound("Genre"))
}
