package models

import "time"

// Comment is a stored comment document referencing its parent post by id.
// The parent post's Comments list must hold this id while the comment exists.
type Comment struct {
	ID        ID        `json:"id"`
	Content   string    `json:"content"`
	Author    ID        `json:"author"`
	Post      ID        `json:"post"`
	LikedBy   []ID      `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
}
