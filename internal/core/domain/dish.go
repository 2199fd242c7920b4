package domain

import "time"

// DishType is a catalog category (starter, main, dessert, ...).
type DishType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"not null"`
}

// Dish is a single catalog item with pricing and nutrition facts.
type Dish struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"uniqueIndex;not null"`
	Price         float64   `json:"price" gorm:"not null"`
	DishTypeID    uint      `json:"dish_type_id" gorm:"not null"`
	DishType      *DishType `json:"dish_type,omitempty"`
	Description   string    `json:"description"`
	Image         []byte    `json:"image,omitempty"`
	Energy        int       `json:"energy"`
	Protein       int       `json:"protein"`
	Fiber         int       `json:"fiber"`
	Carbohydrates int       `json:"carbohydrates"`
	Fats          int       `json:"fats"`
	IsAvailable   bool      `json:"is_available" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
