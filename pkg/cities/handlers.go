package cities

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	cityService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateCityPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	city := &models.City{
		Name:      params.Name,
		StateID:   params.StateID,
		CountryID: params.CountryID,
	}
	if err := h.cityService.CreateCity(ctx, city); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": city.ID}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	cities, err := h.cityService.ListCities(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, cities))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	city, err := h.cityService.RandomCity(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, city))
}
