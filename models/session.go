package models

import "time"

// UserRole distinguishes attendees from event staff.
type UserRole string

const (
	RoleClient    UserRole = "client"
	RoleAttendant UserRole = "attendant"
)

// Session is the signed-in identity of this device.
type Session struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role,omitempty"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials are submitted at login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the public profile exposed by the remote API.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role,omitempty"`
}
