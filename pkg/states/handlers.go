package states

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	stateService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateStatePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	state := &models.State{
		Name:         params.Name,
		Abbreviation: params.Abbreviation,
		CountryID:    params.CountryID,
	}
	if err := h.stateService.CreateState(ctx, state); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": state.ID}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	states, err := h.stateService.ListStates(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, states))
}

func (h *handler) country(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("State")
	}

	state, err := h.stateService.RetrieveState(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, state))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	state, err := h.stateService.RandomState(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, state))
}
