package publishers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	publisherService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreatePublisherPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	publisher := &models.Publisher{
		Name:   params.Name,
		CityID: params.CityID,
	}
	if err := h.publisherService.CreatePublisher(ctx, publisher); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": publisher.ID}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	publishers, err := h.publisherService.ListPublishers(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, publishers))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	publisher, err := h.publisherService.RandomPublisher(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, publisher))
}
