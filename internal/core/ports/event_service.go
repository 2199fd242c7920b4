package ports

import (
	"context"
	"time"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// SelectedDishInput is one menu line chosen by the client for an event.
type SelectedDishInput struct {
	DishID   uint
	Quantity int
	Price    float64
}

// EventInput carries the client-submitted booking fields.
type EventInput struct {
	EventType   string
	Date        time.Time
	Time        string
	PeopleCount int
	TotalCost   float64
	Dishes      []SelectedDishInput
}

// EventPage is one page of events with the total count.
type EventPage struct {
	Items      []*domain.Event
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EventService defines booking use cases. Client operations are scoped to the
// caller's own events; manager operations see everything.
type EventService interface {
	CreateEvent(ctx context.Context, username string, input EventInput) (*domain.Event, error)
	ListClientEvents(ctx context.Context, username string) ([]*domain.Event, error)
	GetClientEvent(ctx context.Context, username string, id uint) (*domain.Event, error)
	// UpdateClientEvent replaces the event fields and dishes; only allowed
	// while the event is still pending.
	UpdateClientEvent(ctx context.Context, username string, id uint, input EventInput) (*domain.Event, error)
	DeleteClientEvent(ctx context.Context, username string, id uint) error

	ListEvents(ctx context.Context) ([]*domain.Event, error)
	ListEventsPage(ctx context.Context, page, limit int) (*EventPage, error)
	GetEvent(ctx context.Context, id uint) (*domain.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error)
	SearchEventsByType(ctx context.Context, eventType string) ([]*domain.Event, error)
	ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	UpdateEventStatus(ctx context.Context, id uint, status domain.EventStatus) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}
