package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// EventService implements booking use cases. Client operations are scoped to
// the caller's own events by querying with the owning client id.
type EventService struct {
	events   ports.EventRepository
	dishes   ports.DishRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewEventService(
	events ports.EventRepository,
	dishes ports.DishRepository,
	accounts ports.AccountRepository,
	log zerolog.Logger,
) *EventService {
	return &EventService{events: events, dishes: dishes, accounts: accounts, log: log}
}

// CreateEvent books a new event for the calling client. Selected dishes are
// resolved against the catalog and priced per line.
func (s *EventService) CreateEvent(ctx context.Context, username string, input ports.EventInput) (*domain.Event, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	dishes, err := s.buildEventDishes(ctx, input.Dishes)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		EventType:   input.EventType,
		EventDate:   input.Date,
		EventTime:   input.Time,
		PeopleCount: input.PeopleCount,
		TotalCost:   input.TotalCost,
		Status:      domain.EventPending,
		ClientID:    client.ID,
		Client:      client,
		Dishes:      dishes,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info().Uint("event_id", event.ID).Str("client", username).Msg("event created")
	return event, nil
}

func (s *EventService) ListClientEvents(ctx context.Context, username string) ([]*domain.Event, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.events.FindByClient(ctx, client.ID)
}

func (s *EventService) GetClientEvent(ctx context.Context, username string, id uint) (*domain.Event, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.events.FindByIDAndClient(ctx, id, client.ID)
}

// UpdateClientEvent replaces the event fields and menu. Only pending events
// can change.
func (s *EventService) UpdateClientEvent(ctx context.Context, username string, id uint, input ports.EventInput) (*domain.Event, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	event, err := s.events.FindByIDAndClient(ctx, id, client.ID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventPending {
		return nil, domain.ErrEventNotPending
	}

	dishes, err := s.buildEventDishes(ctx, input.Dishes)
	if err != nil {
		return nil, err
	}

	event.EventType = input.EventType
	event.EventDate = input.Date
	event.EventTime = input.Time
	event.PeopleCount = input.PeopleCount
	event.TotalCost = input.TotalCost
	event.Dishes = dishes

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info().Uint("event_id", event.ID).Str("client", username).Msg("event updated")
	return event, nil
}

func (s *EventService) DeleteClientEvent(ctx context.Context, username string, id uint) error {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	event, err := s.events.FindByIDAndClient(ctx, id, client.ID)
	if err != nil {
		return err
	}
	if event.Status != domain.EventPending {
		return domain.ErrEventNotPending
	}
	if err := s.events.Delete(ctx, event.ID); err != nil {
		return err
	}
	s.log.Info().Uint("event_id", id).Str("client", username).Msg("event deleted by client")
	return nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *EventService) ListEventsPage(ctx context.Context, page, limit int) (*ports.EventPage, error) {
	page, limit = clampPage(page, limit)
	items, total, err := s.events.FindPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.EventPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.events.FindUpcoming(ctx, time.Now())
}

func (s *EventService) SearchEventsByType(ctx context.Context, eventType string) ([]*domain.Event, error) {
	return s.events.SearchByType(ctx, eventType)
}

func (s *EventService) ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	return s.events.FindByStatus(ctx, status)
}

func (s *EventService) UpdateEventStatus(ctx context.Context, id uint, status domain.EventStatus) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.events.UpdateStatus(ctx, event.ID, status); err != nil {
		return nil, err
	}
	event.Status = status
	s.log.Info().Uint("event_id", id).Str("status", string(status)).Msg("event status updated")
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.events.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("event_id", id).Msg("event deleted")
	return nil
}

// buildEventDishes resolves each selected dish against the catalog and prices
// the line with the submitted unit price.
func (s *EventService) buildEventDishes(ctx context.Context, selected []ports.SelectedDishInput) ([]domain.EventDish, error) {
	dishes := make([]domain.EventDish, 0, len(selected))
	for _, sel := range selected {
		dish, err := s.dishes.FindByID(ctx, sel.DishID)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, domain.EventDish{
			DishID:     dish.ID,
			Dish:       dish,
			Quantity:   sel.Quantity,
			UnitPrice:  sel.Price,
			TotalPrice: sel.Price * float64(sel.Quantity),
		})
	}
	return dishes, nil
}
