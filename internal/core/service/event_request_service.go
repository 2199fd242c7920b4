package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// EventRequestService implements quote-inquiry use cases.
type EventRequestService struct {
	requests ports.EventRequestRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewEventRequestService(
	requests ports.EventRequestRepository,
	accounts ports.AccountRepository,
	log zerolog.Logger,
) *EventRequestService {
	return &EventRequestService{requests: requests, accounts: accounts, log: log}
}

func (s *EventRequestService) CreateRequest(ctx context.Context, username string, input ports.EventRequestInput) (*domain.EventRequest, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	req := &domain.EventRequest{
		EventType:          input.EventType,
		PeopleCount:        input.PeopleCount,
		Date:               input.Date,
		Time:               input.Time,
		Preferences:        input.Preferences,
		Budget:             input.Budget,
		DietaryPreferences: input.DietaryPreferences,
		ClientID:           client.ID,
		Client:             client,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info().Uint("request_id", req.ID).Str("client", username).Msg("event request created")
	return req, nil
}

func (s *EventRequestService) ListClientRequests(ctx context.Context, username string) ([]*domain.EventRequest, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.requests.FindByClient(ctx, client.ID)
}

// GetClientRequest loads one inquiry scoped to the owner. A request that
// exists but belongs to someone else is ErrAccessDenied, not a 404.
func (s *EventRequestService) GetClientRequest(ctx context.Context, username string, id uint) (*domain.EventRequest, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.findOwned(ctx, id, client.ID)
}

func (s *EventRequestService) UpdateClientRequest(ctx context.Context, username string, id uint, input ports.EventRequestInput) (*domain.EventRequest, error) {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	req, err := s.findOwned(ctx, id, client.ID)
	if err != nil {
		return nil, err
	}

	applyRequestInput(req, input)
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info().Uint("request_id", id).Str("client", username).Msg("event request updated by client")
	return req, nil
}

func (s *EventRequestService) DeleteClientRequest(ctx context.Context, username string, id uint) error {
	client, err := s.accounts.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	req, err := s.findOwned(ctx, id, client.ID)
	if err != nil {
		return err
	}
	if err := s.requests.Delete(ctx, req.ID); err != nil {
		return err
	}
	s.log.Info().Uint("request_id", id).Str("client", username).Msg("event request deleted by client")
	return nil
}

func (s *EventRequestService) ListRequests(ctx context.Context) ([]*domain.EventRequest, error) {
	return s.requests.FindAll(ctx)
}

func (s *EventRequestService) ListRequestsPage(ctx context.Context, page, limit int) (*ports.EventRequestPage, error) {
	page, limit = clampPage(page, limit)
	items, total, err := s.requests.FindPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.EventRequestPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *EventRequestService) GetRequest(ctx context.Context, id uint) (*domain.EventRequest, error) {
	return s.requests.FindByID(ctx, id)
}

func (s *EventRequestService) ListUpcomingRequests(ctx context.Context) ([]*domain.EventRequest, error) {
	return s.requests.FindUpcoming(ctx, time.Now())
}

func (s *EventRequestService) SearchRequestsByType(ctx context.Context, eventType string) ([]*domain.EventRequest, error) {
	return s.requests.SearchByType(ctx, eventType)
}

func (s *EventRequestService) UpdateRequest(ctx context.Context, id uint, input ports.EventRequestInput) (*domain.EventRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyRequestInput(req, input)
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info().Uint("request_id", id).Msg("event request updated")
	return req, nil
}

func (s *EventRequestService) DeleteRequest(ctx context.Context, id uint) error {
	if _, err := s.requests.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.requests.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("request_id", id).Msg("event request deleted")
	return nil
}

// findOwned distinguishes "not yours" from "does not exist": an existing
// request with a different owner yields ErrAccessDenied.
func (s *EventRequestService) findOwned(ctx context.Context, id, clientID uint) (*domain.EventRequest, error) {
	req, err := s.requests.FindByIDAndClient(ctx, id, clientID)
	if err == nil {
		return req, nil
	}
	if _, ferr := s.requests.FindByID(ctx, id); ferr == nil {
		return nil, domain.ErrAccessDenied
	}
	return nil, err
}

func applyRequestInput(req *domain.EventRequest, input ports.EventRequestInput) {
	req.EventType = input.EventType
	req.PeopleCount = input.PeopleCount
	req.Date = input.Date
	req.Time = input.Time
	req.Preferences = input.Preferences
	req.Budget = input.Budget
	req.DietaryPreferences = input.DietaryPreferences
}
