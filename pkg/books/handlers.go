package books

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	bookService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := &models.Book{
		Title:           params.Title,
		PublicationYear: params.PublicationYear,
		ISBN:            params.ISBN,
		PublisherID:     params.PublisherID,
		Summary:         params.Summary,
		Citation:        params.Citation,
		SourceLink:      params.SourceLink,
		Rating:          params.Rating,
	}
	err := h.bookService.CreateBook(ctx, CreateBookOptions{
		Book:      book,
		AuthorIDs: params.AuthorIDs,
		GenreIDs:  params.GenreIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": book.ID}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, books))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	book, err := h.bookService.RandomBook(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}
