package quotetypes

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	typeService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateTypePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	typ := &models.Type{Name: params.Name, Description: &params.Description}
	if err := h.typeService.CreateType(ctx, typ); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": typ.ID}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListTypesPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	types, err := h.typeService.ListTypes(ctx, ListTypesOptions{Name: params.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, types))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Type")
	}

	typ, err := h.typeService.RetrieveType(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, typ))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	typ, err := h.typeService.RandomType(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, typ))
}
