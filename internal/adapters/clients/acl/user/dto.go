// Package user implements the Anti-Corruption Layer translator for the
// remote service's user resource.
package user

import domuser "github.com/atsushi-h/go-todo/internal/domain/user"

// UserDTO matches the body of GET /me.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Provider  string `json:"provider"`
}

// ToDomainUser converts a remote UserDTO to a domain User.
func ToDomainUser(dto *UserDTO) domuser.User {
	return domuser.User{
		ID:        dto.ID,
		Email:     dto.Email,
		Name:      dto.Name,
		AvatarURL: dto.AvatarURL,
		Provider:  dto.Provider,
	}
}
