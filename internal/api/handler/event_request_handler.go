package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/broccoflower/catering-api/internal/api/metrics"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// EventRequestHandler serves quote inquiries.
type EventRequestHandler struct {
	service ports.EventRequestService
}

func NewEventRequestHandler(service ports.EventRequestService) *EventRequestHandler {
	return &EventRequestHandler{service: service}
}

type eventRequestRequest struct {
	EventType          string  `json:"event_type"          validate:"required"`
	PeopleCount        int     `json:"people_count"        validate:"required,gt=0"`
	Date               string  `json:"date"                validate:"required,datetime=2006-01-02"`
	Time               string  `json:"time"                validate:"required,datetime=15:04"`
	Preferences        string  `json:"preferences"`
	Budget             float64 `json:"budget"              validate:"gte=0"`
	DietaryPreferences string  `json:"dietary_preferences"`
}

func (r eventRequestRequest) toInput() (ports.EventRequestInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ports.EventRequestInput{}, err
	}
	return ports.EventRequestInput{
		EventType:          r.EventType,
		PeopleCount:        r.PeopleCount,
		Date:               date,
		Time:               r.Time,
		Preferences:        r.Preferences,
		Budget:             r.Budget,
		DietaryPreferences: r.DietaryPreferences,
	}, nil
}

// --- Client endpoints ---

// Create handles POST /client/event-requests.
func (h *EventRequestHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	input, err := bindEventRequestInput(c)
	if err != nil {
		return err
	}
	request, err := h.service.CreateRequest(c.Request().Context(), identity.Username, input)
	if err != nil {
		return err
	}
	metrics.EventRequestsFiledTotal.Inc()
	return c.JSON(http.StatusCreated, request)
}

// ListMine handles GET /client/event-requests.
func (h *EventRequestHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	requests, err := h.service.ListClientRequests(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// GetMine handles GET /client/event-requests/:id.
func (h *EventRequestHandler) GetMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request, err := h.service.GetClientRequest(c.Request().Context(), identity.Username, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// UpdateMine handles PUT /client/event-requests/:id.
func (h *EventRequestHandler) UpdateMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	input, err := bindEventRequestInput(c)
	if err != nil {
		return err
	}
	request, err := h.service.UpdateClientRequest(c.Request().Context(), identity.Username, id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// DeleteMine handles DELETE /client/event-requests/:id.
func (h *EventRequestHandler) DeleteMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteClientRequest(c.Request().Context(), identity.Username, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Manager endpoints ---

// List handles GET /admin/event-requests.
func (h *EventRequestHandler) List(c echo.Context) error {
	requests, err := h.service.ListRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// ListPage handles GET /admin/event-requests/paginated?page=&limit=.
func (h *EventRequestHandler) ListPage(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListRequestsPage(c.Request().Context(), page, limit)
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

// Get handles GET /admin/event-requests/:id.
func (h *EventRequestHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request, err := h.service.GetRequest(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// ListUpcoming handles GET /admin/event-requests/upcoming.
func (h *EventRequestHandler) ListUpcoming(c echo.Context) error {
	requests, err := h.service.ListUpcomingRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Search handles GET /admin/event-requests/search?type=.
func (h *EventRequestHandler) Search(c echo.Context) error {
	eventType := strings.TrimSpace(c.QueryParam("type"))
	if eventType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "type query parameter is required")
	}
	requests, err := h.service.SearchRequestsByType(c.Request().Context(), eventType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Update handles PUT /admin/event-requests/:id.
func (h *EventRequestHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	input, err := bindEventRequestInput(c)
	if err != nil {
		return err
	}
	request, err := h.service.UpdateRequest(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// Delete handles DELETE /admin/event-requests/:id.
func (h *EventRequestHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteRequest(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindEventRequestInput(c echo.Context) (ports.EventRequestInput, error) {
	var req eventRequestRequest
	if err := c.Bind(&req); err != nil {
		return ports.EventRequestInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EventRequestInput{}, err
	}
	return req.toInput()
}
