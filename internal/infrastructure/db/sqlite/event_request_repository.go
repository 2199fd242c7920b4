package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// EventRequestRepository persists quote inquiries.
type EventRequestRepository struct {
	db *gorm.DB
}

func NewEventRequestRepository(db *gorm.DB) *EventRequestRepository {
	return &EventRequestRepository{db: db}
}

func (r *EventRequestRepository) Create(ctx context.Context, req *domain.EventRequest) error {
	return r.db.WithContext(ctx).Omit("Client").Create(req).Error
}

func (r *EventRequestRepository) FindByID(ctx context.Context, id uint) (*domain.EventRequest, error) {
	var req domain.EventRequest
	err := r.db.WithContext(ctx).Preload("Client").First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventRequestNotFound
		}
		return nil, fmt.Errorf("find event request: %w", err)
	}
	return &req, nil
}

func (r *EventRequestRepository) FindByIDAndClient(ctx context.Context, id, clientID uint) (*domain.EventRequest, error) {
	var req domain.EventRequest
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND client_id = ?", id, clientID).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventRequestNotFound
		}
		return nil, fmt.Errorf("find event request: %w", err)
	}
	return &req, nil
}

func (r *EventRequestRepository) FindByClient(ctx context.Context, clientID uint) ([]*domain.EventRequest, error) {
	var reqs []*domain.EventRequest
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *EventRequestRepository) FindAll(ctx context.Context) ([]*domain.EventRequest, error) {
	var reqs []*domain.EventRequest
	err := r.db.WithContext(ctx).Preload("Client").Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *EventRequestRepository) FindPage(ctx context.Context, page, limit int) ([]*domain.EventRequest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.EventRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var reqs []*domain.EventRequest
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reqs).Error
	return reqs, total, err
}

func (r *EventRequestRepository) FindUpcoming(ctx context.Context, after time.Time) ([]*domain.EventRequest, error) {
	var reqs []*domain.EventRequest
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("date > ?", after).
		Order("date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *EventRequestRepository) SearchByType(ctx context.Context, eventType string) ([]*domain.EventRequest, error) {
	var reqs []*domain.EventRequest
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("LOWER(event_type) LIKE LOWER(?)", "%"+eventType+"%").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *EventRequestRepository) Update(ctx context.Context, req *domain.EventRequest) error {
	return r.db.WithContext(ctx).Omit("Client").Save(req).Error
}

func (r *EventRequestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.EventRequest{}, id).Error
}
