package ports

import (
	"context"
	"time"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// EventRequestInput carries the fields for filing or updating an inquiry.
type EventRequestInput struct {
	EventType          string
	PeopleCount        int
	Date               time.Time
	Time               string
	Preferences        string
	Budget             float64
	DietaryPreferences string
}

// EventRequestPage is one page of inquiries with the total count.
type EventRequestPage struct {
	Items      []*domain.EventRequest
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EventRequestService defines inquiry use cases. Client operations only reach
// the caller's own requests; touching a foreign one is ErrAccessDenied.
type EventRequestService interface {
	CreateRequest(ctx context.Context, username string, input EventRequestInput) (*domain.EventRequest, error)
	ListClientRequests(ctx context.Context, username string) ([]*domain.EventRequest, error)
	GetClientRequest(ctx context.Context, username string, id uint) (*domain.EventRequest, error)
	UpdateClientRequest(ctx context.Context, username string, id uint, input EventRequestInput) (*domain.EventRequest, error)
	DeleteClientRequest(ctx context.Context, username string, id uint) error

	ListRequests(ctx context.Context) ([]*domain.EventRequest, error)
	ListRequestsPage(ctx context.Context, page, limit int) (*EventRequestPage, error)
	GetRequest(ctx context.Context, id uint) (*domain.EventRequest, error)
	ListUpcomingRequests(ctx context.Context) ([]*domain.EventRequest, error)
	SearchRequestsByType(ctx context.Context, eventType string) ([]*domain.EventRequest, error)
	UpdateRequest(ctx context.Context, id uint, input EventRequestInput) (*domain.EventRequest, error)
	DeleteRequest(ctx context.Context, id uint) error
}
