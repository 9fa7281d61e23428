package models

import "time"

// DefaultAvatar is assigned at registration when no avatar is provided.
const DefaultAvatar = "https://www.gravatar.com/avatar/?d=mp"

// User is a stored account document. Posts and Friends are denormalized
// back-reference lists maintained by the graph service; Friends is symmetric.
// Password holds the bcrypt hash and must never reach clients; responses go
// through dto.NewUser.
type User struct {
	ID        ID        `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar"`
	Posts     []ID      `json:"posts"`
	Friends   []ID      `json:"friends"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
