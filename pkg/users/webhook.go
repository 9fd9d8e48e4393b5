package users

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/identity"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	golog "github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

const (
	secretPrefix       = "whsec_"
	signatureVersion   = "v1"
	timestampTolerance = 5 * time.Minute
)

// The provider emits many event kinds over the same endpoint; only the user
// lifecycle ones mutate the mirror table.
const (
	eventUserCreated = "user.created"
	eventUserUpdated = "user.updated"
	eventUserDeleted = "user.deleted"
)

type webhookEvent struct {
	Data   webhookUserData `json:"data"`
	Object string          `json:"object"`
	Type   string          `json:"type"`
}

type webhookUserData struct {
	ID             string                `json:"id"`
	FirstName      string                `json:"first_name"`
	LastName       string                `json:"last_name"`
	ImageURL       string                `json:"image_url"`
	EmailAddresses []webhookEmailAddress `json:"email_addresses"`
}

type webhookEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type webhookHandler struct {
	userService    *Service
	identityClient *identity.Client
	secret         string
}

// handleUserEvent verifies and applies a provider user event. Every failure
// returns a plain 400 so the provider marks the delivery failed and retries on
// its own schedule; nothing here retries.
func (h *webhookHandler) handleUserEvent(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEchoContext(c)

	msgID := c.Request().Header.Get("svix-id")
	timestamp := c.Request().Header.Get("svix-timestamp")
	signature := c.Request().Header.Get("svix-signature")
	if msgID == "" || timestamp == "" || signature == "" {
		return errors.WithStack(c.String(http.StatusBadRequest, "Error: no svix headers found."))
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.WithStack(c.String(http.StatusBadRequest, "Error occured"))
	}

	if err := verifySignature(h.secret, msgID, timestamp, signature, body, time.Now()); err != nil {
		log.Err(err).Error("webhook signature verification failed")
		return errors.WithStack(c.String(http.StatusBadRequest, "Error occured"))
	}

	evt := webhookEvent{}
	if err := json.Unmarshal(body, &evt); err != nil {
		log.Err(err).Error("webhook payload decode failed")
		return errors.WithStack(c.String(http.StatusBadRequest, "Error occured"))
	}

	switch evt.Type {
	case eventUserCreated, eventUserUpdated, eventUserDeleted:
	default:
		// not a user lifecycle event, acknowledge and move on
		return errors.WithStack(c.NoContent(http.StatusOK))
	}

	localID, err := h.applyUserEvent(ctx, evt)
	if err != nil {
		log.Err(err).Error("webhook user event failed", golog.Data{"event_type": evt.Type})
		return errors.WithStack(c.String(http.StatusBadRequest, "Error occured"))
	}

	err = h.identityClient.UpdateUserMetadata(ctx, evt.Data.ID, map[string]any{
		"user_id": localID,
	})
	if err != nil {
		log.Err(err).Error("webhook metadata write failed")
		return errors.WithStack(c.String(http.StatusBadRequest, "Error occured"))
	}

	return errors.WithStack(c.NoContent(http.StatusOK))
}

func (h *webhookHandler) applyUserEvent(ctx context.Context, evt webhookEvent) (string, error) {
	switch evt.Type {
	case eventUserCreated:
		if len(evt.Data.EmailAddresses) == 0 {
			return "", errors.New("user event has no email addresses")
		}
		user, err := h.userService.CreateUser(ctx, CreateUserOptions{
			ExternalID: evt.Data.ID,
			Email:      evt.Data.EmailAddresses[0].EmailAddress,
			Name:       evt.Data.FirstName + " " + evt.Data.LastName,
			Image:      evt.Data.ImageURL,
		})
		if err != nil {
			return "", errors.WithStack(err)
		}
		return user.ID, nil

	case eventUserUpdated:
		if len(evt.Data.EmailAddresses) == 0 {
			return "", errors.New("user event has no email addresses")
		}
		user, err := h.userService.UpdateUserByExternalID(ctx, evt.Data.ID, UpdateUserOptions{
			Email: evt.Data.EmailAddresses[0].EmailAddress,
			Name:  evt.Data.FirstName + " " + evt.Data.LastName,
			Image: evt.Data.ImageURL,
		})
		if err != nil {
			return "", errors.WithStack(err)
		}
		return user.ID, nil

	case eventUserDeleted:
		user, err := h.userService.DeleteUserByExternalID(ctx, evt.Data.ID)
		if err != nil {
			return "", errors.WithStack(err)
		}
		return user.ID, nil
	}

	return "", errors.Errorf("unexpected event type %q", evt.Type)
}

// verifySignature checks the webhook signature scheme used by the provider:
// HMAC-SHA256 over "id.timestamp.body" keyed with the base64 secret, matched
// in constant time against each space-separated "v1,<base64>" candidate.
func verifySignature(secret, msgID, timestamp, signatures string, body []byte, now time.Time) error {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil {
		return errors.WithStack(err)
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid timestamp header")
	}
	diff := now.Sub(time.Unix(ts, 0))
	if diff > timestampTolerance || diff < -timestampTolerance {
		return errors.New("timestamp outside of tolerance")
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msgID + "." + timestamp + "."))
	mac.Write(body)
	expected := mac.Sum(nil)

	for _, candidate := range strings.Split(signatures, " ") {
		parts := strings.SplitN(candidate, ",", 2)
		if len(parts) != 2 || parts[0] != signatureVersion {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return errors.New("no matching signature")
}
