package handler

import "github.com/broccoflower/catering-api/internal/core/ports"

type selectedDishRequest struct {
	DishID   uint    `json:"dish_id"  validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price"    validate:"gte=0"`
}

type eventRequest struct {
	EventType   string                `json:"event_type"   validate:"required"`
	Date        string                `json:"date"         validate:"required,datetime=2006-01-02"`
	Time        string                `json:"time"         validate:"required,datetime=15:04"`
	PeopleCount int                   `json:"people_count" validate:"required,gt=0"`
	TotalCost   float64               `json:"total_cost"   validate:"gte=0"`
	Dishes      []selectedDishRequest `json:"dishes"       validate:"required,min=1,dive"`
}

type updateEventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_preparation completed cancelled"`
}

type eventPageResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func (r eventRequest) toInput() (ports.EventInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ports.EventInput{}, err
	}
	dishes := make([]ports.SelectedDishInput, 0, len(r.Dishes))
	for _, d := range r.Dishes {
		dishes = append(dishes, ports.SelectedDishInput{
			DishID:   d.DishID,
			Quantity: d.Quantity,
			Price:    d.Price,
		})
	}
	return ports.EventInput{
		EventType:   r.EventType,
		Date:        date,
		Time:        r.Time,
		PeopleCount: r.PeopleCount,
		TotalCost:   r.TotalCost,
		Dishes:      dishes,
	}, nil
}
