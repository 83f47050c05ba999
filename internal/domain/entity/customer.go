package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a pharmacy customer record. A bill embeds a snapshot
// of this data rather than referencing it, so customer edits never rewrite
// history.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
