package models

import "time"

type Event struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
