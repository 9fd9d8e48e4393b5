package quotes

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/auth"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	quoteService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	user := auth.SessionUser(c)
	if user == nil {
		return errcodes.Unauthorized("You must be logged in to create a quote.")
	}

	params := CreateQuotePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	quote := &models.Quote{
		UserID:      user.ID,
		Text:        params.Text,
		BookID:      params.BookID,
		Context:     params.Context,
		PageNumber:  params.PageNumber,
		QuotedBy:    params.QuotedBy,
		IsImportant: &params.IsImportant,
		IsPrivate:   &params.IsPrivate,
	}
	err := h.quoteService.CreateQuote(ctx, CreateQuoteOptions{
		Quote:    quote,
		TopicIDs: params.TopicIDs,
		TagIDs:   params.TagIDs,
		TypeIDs:  params.TypeIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": quote.ID}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	params := UpdateQuotePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.quoteService.UpdateQuote(ctx, id, UpdateQuoteOptions{
		Text:        params.Text,
		BookID:      params.BookID,
		Context:     params.Context,
		PageNumber:  params.PageNumber,
		QuotedBy:    params.QuotedBy,
		IsImportant: params.IsImportant,
		IsPrivate:   params.IsPrivate,
		TopicIDs:    params.TopicIDs,
		TagIDs:      params.TagIDs,
		TypeIDs:     params.TypeIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, quote))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	user := auth.SessionUser(c)
	if user == nil {
		return errcodes.Unauthorized("You must be logged in to delete a quote.")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	if err := h.quoteService.DeleteQuote(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	quotes, err := h.quoteService.ListQuotes(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, quotes))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	quote, err := h.quoteService.RetrieveQuote(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, quote))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	quote, err := h.quoteService.RandomQuote(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, quote))
}

func (h *handler) listAuthors(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	links, err := h.quoteService.ListQuoteAuthors(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, links))
}

func (h *handler) listWithBooks(c echo.Context) error {
	ctx := c.Request().Context()

	var viewerID *string
	if user := auth.SessionUser(c); user != nil {
		viewerID = &user.ID
	}

	views, err := h.quoteService.ListQuotesWithBookDetails(ctx, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, views))
}

func (h *handler) retrieveWithBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Quote")
	}

	var viewerID *string
	if user := auth.SessionUser(c); user != nil {
		viewerID = &user.ID
	}

	view, err := h.quoteService.RetrieveQuoteWithBookDetails(ctx, id, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, view))
}
