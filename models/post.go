package models

import "time"

// Post is a stored post document. Author is immutable after creation.
// LikedBy and Comments live inline on the document; the comment records
// themselves are a separate collection referenced by id.
type Post struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    ID        `json:"author"`
	LikedBy   []ID      `json:"likedBy"`
	Comments  []ID      `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
