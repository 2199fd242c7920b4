package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/broccoflower/catering-api/internal/api/metrics"
	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// EventHandler serves event bookings. Client endpoints operate on the
// caller's own events; the manager endpoints see the whole book.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// --- Client endpoints ---

// Create handles POST /client/events.
func (h *EventHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	input, err := bindEventInput(c)
	if err != nil {
		return err
	}
	event, err := h.service.CreateEvent(c.Request().Context(), identity.Username, input)
	if err != nil {
		return err
	}
	metrics.EventsBookedTotal.Inc()
	return c.JSON(http.StatusCreated, event)
}

// ListMine handles GET /client/events.
func (h *EventHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	events, err := h.service.ListClientEvents(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// GetMine handles GET /client/events/:id.
func (h *EventHandler) GetMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	event, err := h.service.GetClientEvent(c.Request().Context(), identity.Username, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// UpdateMine handles PUT /client/events/:id. Only pending events may change.
func (h *EventHandler) UpdateMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	input, err := bindEventInput(c)
	if err != nil {
		return err
	}
	event, err := h.service.UpdateClientEvent(c.Request().Context(), identity.Username, id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteMine handles DELETE /client/events/:id. Only pending events may go.
func (h *EventHandler) DeleteMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteClientEvent(c.Request().Context(), identity.Username, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Manager endpoints ---

// List handles GET /admin/events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListPage handles GET /admin/events/paginated?page=&limit=.
func (h *EventHandler) ListPage(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListEventsPage(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventPageResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /admin/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	event, err := h.service.GetEvent(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// ListUpcoming handles GET /admin/events/upcoming.
func (h *EventHandler) ListUpcoming(c echo.Context) error {
	events, err := h.service.ListUpcomingEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Search handles GET /admin/events/search?type=.
func (h *EventHandler) Search(c echo.Context) error {
	eventType := strings.TrimSpace(c.QueryParam("type"))
	if eventType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "type query parameter is required")
	}
	events, err := h.service.SearchEventsByType(c.Request().Context(), eventType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListByStatus handles GET /admin/events/status/:status.
func (h *EventHandler) ListByStatus(c echo.Context) error {
	status := domain.EventStatus(c.Param("status"))
	if !domain.ValidEventStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown event status")
	}
	events, err := h.service.ListEventsByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// UpdateStatus handles PUT /admin/events/:id/status.
func (h *EventHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateEventStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	event, err := h.service.UpdateEventStatus(c.Request().Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /admin/events/:id. Managers may delete in any state.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteEvent(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindEventInput(c echo.Context) (ports.EventInput, error) {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EventInput{}, err
	}
	return req.toInput()
}
