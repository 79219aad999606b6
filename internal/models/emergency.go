package models

import (
	"time"

	"github.com/google/uuid"
)

// Emergency - активный вызов, привязанный к машине и больнице
type Emergency struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Position  Point     `json:"position"`
	Hospital  *Hospital `json:"hospital,omitempty"`
	UnitID    string    `json:"unit_id"`
	CreatedAt time.Time `json:"created_at"`
}
