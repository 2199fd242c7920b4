package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/broccoflower/catering-api/internal/api/metrics"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// DishHandler serves the dish catalog. Read endpoints are public; the
// create/update/delete endpoints are mounted under the manager-only group.
type DishHandler struct {
	service ports.DishService
}

func NewDishHandler(service ports.DishService) *DishHandler {
	return &DishHandler{service: service}
}

// List handles GET /dishes.
func (h *DishHandler) List(c echo.Context) error {
	dishes, err := h.service.ListDishes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishes)
}

// ListPage handles GET /dishes/paginated?page=&limit=.
func (h *DishHandler) ListPage(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListDishesPage(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishPageResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// ListAvailable handles GET /dishes/available.
func (h *DishHandler) ListAvailable(c echo.Context) error {
	dishes, err := h.service.ListAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishes)
}

// ListAvailablePage handles GET /dishes/available/paginated?page=&limit=.
func (h *DishHandler) ListAvailablePage(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListAvailablePage(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishPageResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /dishes/:id.
func (h *DishHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	dish, err := h.service.GetDish(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dish)
}

// Search handles GET /dishes/search?name=.
func (h *DishHandler) Search(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name query parameter is required")
	}
	dishes, err := h.service.SearchByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishes)
}

// ListByType handles GET /dishes/type/:dishTypeId.
func (h *DishHandler) ListByType(c echo.Context) error {
	typeID, err := parseUint(c.Param("dishTypeId"))
	if err != nil {
		return err
	}
	dishes, err := h.service.ListByType(c.Request().Context(), typeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishes)
}

// ListByPriceRange handles GET /dishes/price-range?min=&max=.
func (h *DishHandler) ListByPriceRange(c echo.Context) error {
	min, errMin := strconv.ParseFloat(c.QueryParam("min"), 64)
	max, errMax := strconv.ParseFloat(c.QueryParam("max"), 64)
	if errMin != nil || errMax != nil || min < 0 || max < min {
		return echo.NewHTTPError(http.StatusBadRequest, "min and max must form a valid price range")
	}
	dishes, err := h.service.ListByPriceRange(c.Request().Context(), min, max)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishes)
}

// Create handles POST /admin/dishes.
func (h *DishHandler) Create(c echo.Context) error {
	input, err := bindDishInput(c)
	if err != nil {
		return err
	}
	dish, err := h.service.CreateDish(c.Request().Context(), input)
	if err != nil {
		return err
	}
	metrics.DishesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, dish)
}

// Update handles PUT /admin/dishes/:id.
func (h *DishHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	input, err := bindDishInput(c)
	if err != nil {
		return err
	}
	dish, err := h.service.UpdateDish(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dish)
}

// Delete handles DELETE /admin/dishes/:id.
func (h *DishHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDish(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindDishInput(c echo.Context) (ports.DishInput, error) {
	var req dishRequest
	if err := c.Bind(&req); err != nil {
		return ports.DishInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.DishInput{}, err
	}

	// availability defaults to true when the field is omitted
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	return ports.DishInput{
		Name:          strings.TrimSpace(req.Name),
		Price:         req.Price,
		DishTypeID:    req.DishTypeID,
		Description:   strings.TrimSpace(req.Description),
		Image:         req.Image,
		Energy:        req.Energy,
		Protein:       req.Protein,
		Fiber:         req.Fiber,
		Carbohydrates: req.Carbohydrates,
		Fats:          req.Fats,
		IsAvailable:   available,
	}, nil
}
