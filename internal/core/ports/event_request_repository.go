package ports

import (
	"context"
	"time"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// EventRequestRepository defines persistence for quote inquiries.
type EventRequestRepository interface {
	Create(ctx context.Context, req *domain.EventRequest) error
	FindByID(ctx context.Context, id uint) (*domain.EventRequest, error)
	FindByIDAndClient(ctx context.Context, id, clientID uint) (*domain.EventRequest, error)
	FindByClient(ctx context.Context, clientID uint) ([]*domain.EventRequest, error)
	FindAll(ctx context.Context) ([]*domain.EventRequest, error)
	FindPage(ctx context.Context, page, limit int) ([]*domain.EventRequest, int64, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]*domain.EventRequest, error)
	SearchByType(ctx context.Context, eventType string) ([]*domain.EventRequest, error)
	Update(ctx context.Context, req *domain.EventRequest) error
	Delete(ctx context.Context, id uint) error
}
