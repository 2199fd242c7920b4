package domain

import "time"

// EventStatus is the lifecycle state of a booked event.
type EventStatus string

const (
	EventPending       EventStatus = "pending"
	EventConfirmed     EventStatus = "confirmed"
	EventInPreparation EventStatus = "in_preparation"
	EventCompleted     EventStatus = "completed"
	EventCancelled     EventStatus = "cancelled"
)

// ValidEventStatus reports whether s names a known lifecycle state.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventPending, EventConfirmed, EventInPreparation, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// Event is a confirmed booking with its selected menu. Clients may only
// modify or delete an event while it is still pending.
type Event struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	EventType   string      `json:"event_type" gorm:"not null"`
	EventDate   time.Time   `json:"event_date" gorm:"not null"`
	EventTime   string      `json:"event_time" gorm:"not null"`
	PeopleCount int         `json:"people_count" gorm:"not null"`
	TotalCost   float64     `json:"total_cost" gorm:"not null"`
	Status      EventStatus `json:"status" gorm:"not null"`
	ClientID    uint        `json:"client_id" gorm:"not null"`
	Client      *User       `json:"client,omitempty"`
	Dishes      []EventDish `json:"dishes" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EventDish links a dish to an event with the quantity and the price agreed
// at booking time (the catalog price may change later).
type EventDish struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	EventID    uint    `json:"-" gorm:"not null"`
	DishID     uint    `json:"dish_id" gorm:"not null"`
	Dish       *Dish   `json:"dish,omitempty"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	UnitPrice  float64 `json:"unit_price" gorm:"not null"`
	TotalPrice float64 `json:"total_price" gorm:"not null"`
}
