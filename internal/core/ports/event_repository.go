package ports

import (
	"context"
	"time"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// EventRepository defines persistence for booked events and their dishes.
type EventRepository interface {
	// Create inserts the event together with its dish rows in one transaction.
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id uint) (*domain.Event, error)
	// FindByIDAndClient scopes the lookup to the owning client; a foreign
	// event is indistinguishable from a missing one.
	FindByIDAndClient(ctx context.Context, id, clientID uint) (*domain.Event, error)
	FindByClient(ctx context.Context, clientID uint) ([]*domain.Event, error)
	FindAll(ctx context.Context) ([]*domain.Event, error)
	FindPage(ctx context.Context, page, limit int) ([]*domain.Event, int64, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]*domain.Event, error)
	SearchByType(ctx context.Context, eventType string) ([]*domain.Event, error)
	FindByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	// Update saves the event and replaces its dish rows in one transaction.
	Update(ctx context.Context, event *domain.Event) error
	UpdateStatus(ctx context.Context, id uint, status domain.EventStatus) error
	Delete(ctx context.Context, id uint) error
}
