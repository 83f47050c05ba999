package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a cashier or admin account able to operate the POS
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
