package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// EventRepository persists booked events and their dish lines.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dishes := event.Dishes
		event.Dishes = nil
		if err := tx.Omit("Client").Create(event).Error; err != nil {
			return err
		}
		for i := range dishes {
			dishes[i].EventID = event.ID
		}
		if len(dishes) > 0 {
			if err := tx.Omit("Dish").Create(&dishes).Error; err != nil {
				return err
			}
		}
		event.Dishes = dishes
		return nil
	})
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*domain.Event, error) {
	var event domain.Event
	err := r.eager(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) FindByIDAndClient(ctx context.Context, id, clientID uint) (*domain.Event, error) {
	var event domain.Event
	err := r.eager(ctx).
		Where("id = ? AND client_id = ?", id, clientID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) FindByClient(ctx context.Context, clientID uint) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.eager(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.eager(ctx).Order("created_at DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindPage(ctx context.Context, page, limit int) ([]*domain.Event, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var events []*domain.Event
	err := r.eager(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error
	return events, total, err
}

func (r *EventRepository) FindUpcoming(ctx context.Context, after time.Time) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.eager(ctx).
		Where("event_date > ?", after).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) SearchByType(ctx context.Context, eventType string) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.eager(ctx).
		Where("LOWER(event_type) LIKE LOWER(?)", "%"+eventType+"%").
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.eager(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

// Update saves the event and replaces its dish lines in one transaction.
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&domain.EventDish{}).Error; err != nil {
			return err
		}
		dishes := event.Dishes
		event.Dishes = nil
		if err := tx.Omit("Client", "Dishes").Save(event).Error; err != nil {
			return err
		}
		for i := range dishes {
			dishes[i].ID = 0
			dishes[i].EventID = event.ID
		}
		if len(dishes) > 0 {
			if err := tx.Omit("Dish").Create(&dishes).Error; err != nil {
				return err
			}
		}
		event.Dishes = dishes
		return nil
	})
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uint, status domain.EventStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&domain.EventDish{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Event{}, id).Error
	})
}

func (r *EventRepository) eager(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Dishes").
		Preload("Dishes.Dish").
		Preload("Dishes.Dish.DishType")
}
