package countries

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	countryService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateCountryPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	country := &models.Country{Name: params.Name}
	if err := h.countryService.CreateCountry(ctx, country); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": country.ID}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	countries, err := h.countryService.ListCountries(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, countries))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	country, err := h.countryService.RandomCountry(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, country))
}
