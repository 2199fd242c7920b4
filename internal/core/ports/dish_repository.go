package ports

import (
	"context"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// DishRepository defines persistence operations for the dish catalog.
type DishRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Dish, error)
	FindAll(ctx context.Context) ([]*domain.Dish, error)
	// FindPage returns one page of dishes and the total count.
	FindPage(ctx context.Context, page, limit int) ([]*domain.Dish, int64, error)
	FindAvailable(ctx context.Context) ([]*domain.Dish, error)
	FindAvailablePage(ctx context.Context, page, limit int) ([]*domain.Dish, int64, error)
	// SearchByName matches the name substring case-insensitively.
	SearchByName(ctx context.Context, name string) ([]*domain.Dish, error)
	FindByType(ctx context.Context, dishTypeID uint) ([]*domain.Dish, error)
	FindByPriceRange(ctx context.Context, min, max float64) ([]*domain.Dish, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindDishType(ctx context.Context, id uint) (*domain.DishType, error)
	Create(ctx context.Context, dish *domain.Dish) error
	Update(ctx context.Context, dish *domain.Dish) error
	Delete(ctx context.Context, id uint) error
}
