package dto

import (
	"time"

	"api/models"
)

// FeedPost is a post in a feed response with its author attached. For the
// friend-comment feed, Comments carries only the matching friend-authored
// comments; it is omitted for the other feeds.
type FeedPost struct {
	ID        models.ID        `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Author    *User            `json:"author"`
	LikedBy   []models.ID      `json:"likedBy"`
	Comments  []models.Comment `json:"comments,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func NewFeedPost(post *models.Post, author *models.User, comments []models.Comment) *FeedPost {
	return &FeedPost{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    NewUser(author),
		LikedBy:   post.LikedBy,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
