package ports

import (
	"context"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// DishInput carries the fields for creating or updating a dish.
type DishInput struct {
	Name          string
	Price         float64
	DishTypeID    uint
	Description   string
	Image         []byte
	Energy        int
	Protein       int
	Fiber         int
	Carbohydrates int
	Fats          int
	IsAvailable   bool
}

// DishPage is one page of catalog results.
type DishPage struct {
	Items      []*domain.Dish
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// DishService defines catalog use cases. Reads are public; writes are
// reserved for managers by the transport layer.
type DishService interface {
	GetDish(ctx context.Context, id uint) (*domain.Dish, error)
	ListDishes(ctx context.Context) ([]*domain.Dish, error)
	ListDishesPage(ctx context.Context, page, limit int) (*DishPage, error)
	ListAvailable(ctx context.Context) ([]*domain.Dish, error)
	ListAvailablePage(ctx context.Context, page, limit int) (*DishPage, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Dish, error)
	ListByType(ctx context.Context, dishTypeID uint) ([]*domain.Dish, error)
	ListByPriceRange(ctx context.Context, min, max float64) ([]*domain.Dish, error)
	CreateDish(ctx context.Context, input DishInput) (*domain.Dish, error)
	UpdateDish(ctx context.Context, id uint, input DishInput) (*domain.Dish, error)
	DeleteDish(ctx context.Context, id uint) error
}
