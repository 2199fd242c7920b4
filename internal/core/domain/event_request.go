package domain

import "time"

// EventRequest is a client's inquiry for a quote, filed before any event is
// booked. Owned by the requesting client.
type EventRequest struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	EventType          string    `json:"event_type" gorm:"not null"`
	PeopleCount        int       `json:"people_count" gorm:"not null"`
	Date               time.Time `json:"date" gorm:"not null"`
	Time               string    `json:"time" gorm:"not null"`
	Preferences        string    `json:"preferences"`
	Budget             float64   `json:"budget"`
	DietaryPreferences string    `json:"dietary_preferences"`
	ClientID           uint      `json:"client_id" gorm:"not null"`
	Client             *User     `json:"client,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
