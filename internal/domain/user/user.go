// Package user holds the authenticated user as reported by the todo service.
package user

import "strings"

// User is the identity behind a session. The server owns every field; the
// client only displays them.
type User struct {
	ID        int64
	Email     string
	Name      string
	AvatarURL string
	Provider  string
}

// DisplayName returns Name, falling back to Email when Name is blank.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}
