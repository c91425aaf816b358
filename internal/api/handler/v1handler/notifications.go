package v1handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
)

const streamKeepAlive = 15 * time.Second

type createNotificationRequest struct {
	Content string `json:"content"`
}

func (h *Handler) createNotification(c *fiber.Ctx) error {
	id, err := pathID(c, "employerId")
	if err != nil {
		return err
	}

	var req createNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	created, err := h.deps.Notifications.Create(c.UserContext(),
		domain.EmployerID(id), req.Content)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, created, "Notification created successfully")
}

func (h *Handler) listNotifications(c *fiber.Ctx) error {
	id, err := pathID(c, "employerId")
	if err != nil {
		return err
	}

	notifications, err := h.deps.Notifications.List(c.UserContext(), domain.EmployerID(id))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, notifications, "Notifications fetched successfully")
}

// streamNotifications delivers the authenticated employer's notifications as
// server-sent events. The subscription lives for the duration of the
// connection; a failed write ends it.
func (h *Handler) streamNotifications(c *fiber.Ctx) error {
	record := currentEmployer(c)
	ch, unsubscribe := h.deps.Notifications.Subscribe(record.ID)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		keepAlive := time.NewTicker(streamKeepAlive)
		defer keepAlive.Stop()

		for {
			select {
			case notification, ok := <-ch:
				if !ok {
					return
				}
				payload, err := json.Marshal(notification)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "event: notification\ndata: %s\n\n", payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepAlive.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})

	return nil
}
