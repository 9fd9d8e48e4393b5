package topics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
)

type handler struct {
	topicService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateTopicPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	topic := &models.Topic{Name: params.Name, Description: &params.Description}
	if err := h.topicService.CreateTopic(ctx, topic); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]int{"id": topic.ID}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListTopicsPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	topics, err := h.topicService.ListTopics(ctx, ListTopicsOptions{Name: params.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, topics))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Topic")
	}

	topic, err := h.topicService.RetrieveTopic(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, topic))
}

func (h *handler) random(c echo.Context) error {
	ctx := c.Request().Context()

	topic, err := h.topicService.RandomTopic(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, topic))
}
