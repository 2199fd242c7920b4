package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// DishRepository persists the dish catalog.
type DishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{db: db}
}

func (r *DishRepository) FindByID(ctx context.Context, id uint) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.db.WithContext(ctx).Preload("DishType").First(&dish, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDishNotFound
		}
		return nil, fmt.Errorf("find dish: %w", err)
	}
	return &dish, nil
}

func (r *DishRepository) FindAll(ctx context.Context) ([]*domain.Dish, error) {
	var dishes []*domain.Dish
	err := r.db.WithContext(ctx).Preload("DishType").Order("name").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindPage(ctx context.Context, page, limit int) ([]*domain.Dish, int64, error) {
	return r.page(ctx, r.db.WithContext(ctx).Model(&domain.Dish{}), page, limit)
}

func (r *DishRepository) FindAvailable(ctx context.Context) ([]*domain.Dish, error) {
	var dishes []*domain.Dish
	err := r.db.WithContext(ctx).
		Preload("DishType").
		Where("is_available = ?", true).
		Order("name").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindAvailablePage(ctx context.Context, page, limit int) ([]*domain.Dish, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Dish{}).Where("is_available = ?", true)
	return r.page(ctx, q, page, limit)
}

func (r *DishRepository) SearchByName(ctx context.Context, name string) ([]*domain.Dish, error) {
	var dishes []*domain.Dish
	err := r.db.WithContext(ctx).
		Preload("DishType").
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("name").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByType(ctx context.Context, dishTypeID uint) ([]*domain.Dish, error) {
	var dishes []*domain.Dish
	err := r.db.WithContext(ctx).
		Preload("DishType").
		Where("dish_type_id = ?", dishTypeID).
		Order("name").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByPriceRange(ctx context.Context, min, max float64) ([]*domain.Dish, error) {
	var dishes []*domain.Dish
	err := r.db.WithContext(ctx).
		Preload("DishType").
		Where("price >= ? AND price <= ?", min, max).
		Order("price").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Dish{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}

func (r *DishRepository) FindDishType(ctx context.Context, id uint) (*domain.DishType, error) {
	var dishType domain.DishType
	err := r.db.WithContext(ctx).First(&dishType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDishTypeNotFound
		}
		return nil, fmt.Errorf("find dish type: %w", err)
	}
	return &dishType, nil
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	return r.db.WithContext(ctx).Omit("DishType").Create(dish).Error
}

func (r *DishRepository) Update(ctx context.Context, dish *domain.Dish) error {
	return r.db.WithContext(ctx).Omit("DishType").Save(dish).Error
}

func (r *DishRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Dish{}, id).Error
}

func (r *DishRepository) page(ctx context.Context, q *gorm.DB, page, limit int) ([]*domain.Dish, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var dishes []*domain.Dish
	err := q.
		Preload("DishType").
		Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&dishes).Error
	return dishes, total, err
}
