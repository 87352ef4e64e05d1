package domain

import "time"

// User is a marketplace account keyed by email. Documents are upserted, so the
// last write wins for every field including Role.
type User struct {
	ID        string    `json:"_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Image     string    `json:"image,omitempty"`
	Role      Role      `json:"role,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// UserProfile carries the fields a client may set through PUT /user/:email.
// Role is the initial role of a new user (Buyer when nil) and is ignored for
// existing users.
type UserProfile struct {
	Email string
	Name  string
	Image string
	Role  *Role
}
