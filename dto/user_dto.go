// Package dto holds the response shapes sent to clients.
package dto

import (
	"time"

	"api/models"
)

// User is the client-facing account shape: everything except the password
// hash.
type User struct {
	ID        models.ID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Bio       string      `json:"bio,omitempty"`
	Avatar    string      `json:"avatar"`
	Posts     []models.ID `json:"posts"`
	Friends   []models.ID `json:"friends"`
	CreatedAt time.Time   `json:"createdAt"`
}

func NewUser(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Posts:     u.Posts,
		Friends:   u.Friends,
		CreatedAt: u.CreatedAt,
	}
}

func NewUsers(users []models.User) []*User {
	out := make([]*User, len(users))
	for i := range users {
		out[i] = NewUser(&users[i])
	}
	return out
}
