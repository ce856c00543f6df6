// FilePath: internal/models/models.user.go
package models

import "time"

// User is a platform account. Contact fields are only readable by admin views.
type User struct {
	ID        string    `json:"id" db:"id" readxs:"*" writexs:"*"`
	Email     string    `json:"email" db:"email" readxs:"admin,system" writexs:"admin,system"`
	Name      string    `json:"name" db:"name" readxs:"*" writexs:"*"`
	Role      Role      `json:"role" db:"role" readxs:"*" writexs:"*"`
	Phone     string    `json:"phone" db:"phone" readxs:"admin,system" writexs:"admin,system"`
	Address   string    `json:"address" db:"address" readxs:"admin,system" writexs:"admin,system"`
	Province  Province  `json:"province" db:"province" readxs:"*" writexs:"*"`
	City      string    `json:"city" db:"city" readxs:"*" writexs:"*"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" readxs:"*" writexs:"*"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" readxs:"*" writexs:"*"`
}

// FilterByRole returns the users acting in the given role, preserving order
func FilterByRole(users []User, role Role) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}
