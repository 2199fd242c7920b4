package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// DishService implements catalog reads and manager-only writes.
type DishService struct {
	repo ports.DishRepository
	log  zerolog.Logger
}

func NewDishService(repo ports.DishRepository, log zerolog.Logger) *DishService {
	return &DishService{repo: repo, log: log}
}

func (s *DishService) GetDish(ctx context.Context, id uint) (*domain.Dish, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DishService) ListDishes(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.FindAll(ctx)
}

func (s *DishService) ListDishesPage(ctx context.Context, page, limit int) (*ports.DishPage, error) {
	page, limit = clampPage(page, limit)
	items, total, err := s.repo.FindPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.DishPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *DishService) ListAvailable(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.FindAvailable(ctx)
}

func (s *DishService) ListAvailablePage(ctx context.Context, page, limit int) (*ports.DishPage, error) {
	page, limit = clampPage(page, limit)
	items, total, err := s.repo.FindAvailablePage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.DishPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *DishService) SearchByName(ctx context.Context, name string) ([]*domain.Dish, error) {
	return s.repo.SearchByName(ctx, strings.TrimSpace(name))
}

func (s *DishService) ListByType(ctx context.Context, dishTypeID uint) ([]*domain.Dish, error) {
	return s.repo.FindByType(ctx, dishTypeID)
}

func (s *DishService) ListByPriceRange(ctx context.Context, min, max float64) ([]*domain.Dish, error) {
	return s.repo.FindByPriceRange(ctx, min, max)
}

// CreateDish adds a catalog item. The name must be unique and the dish type
// must already exist.
func (s *DishService) CreateDish(ctx context.Context, input ports.DishInput) (*domain.Dish, error) {
	exists, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDishExists
	}

	dishType, err := s.repo.FindDishType(ctx, input.DishTypeID)
	if err != nil {
		return nil, err
	}

	dish := &domain.Dish{
		Name:          input.Name,
		Price:         input.Price,
		DishTypeID:    dishType.ID,
		DishType:      dishType,
		Description:   input.Description,
		Image:         input.Image,
		Energy:        input.Energy,
		Protein:       input.Protein,
		Fiber:         input.Fiber,
		Carbohydrates: input.Carbohydrates,
		Fats:          input.Fats,
		IsAvailable:   input.IsAvailable,
	}
	if err := s.repo.Create(ctx, dish); err != nil {
		return nil, err
	}

	s.log.Info().Uint("dish_id", dish.ID).Str("name", dish.Name).Msg("dish created")
	return dish, nil
}

func (s *DishService) UpdateDish(ctx context.Context, id uint, input ports.DishInput) (*domain.Dish, error) {
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// renaming onto another dish's name is a conflict
	if !strings.EqualFold(dish.Name, input.Name) {
		exists, err := s.repo.ExistsByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDishExists
		}
	}

	dishType, err := s.repo.FindDishType(ctx, input.DishTypeID)
	if err != nil {
		return nil, err
	}

	dish.Name = input.Name
	dish.Price = input.Price
	dish.DishTypeID = dishType.ID
	dish.DishType = dishType
	dish.Description = input.Description
	dish.Image = input.Image
	dish.Energy = input.Energy
	dish.Protein = input.Protein
	dish.Fiber = input.Fiber
	dish.Carbohydrates = input.Carbohydrates
	dish.Fats = input.Fats
	dish.IsAvailable = input.IsAvailable

	if err := s.repo.Update(ctx, dish); err != nil {
		return nil, err
	}

	s.log.Info().Uint("dish_id", dish.ID).Msg("dish updated")
	return dish, nil
}

func (s *DishService) DeleteDish(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("dish_id", id).Msg("dish deleted")
	return nil
}

// clampPage normalizes pagination arguments: 1-based page, limit capped at
// maxPageLimit.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
