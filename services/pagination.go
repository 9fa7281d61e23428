package services

import (
	"sort"

	"api/models"
)

// Page is one page of a time-ordered result set.
type Page[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	TotalPages int
}

// paginate slices items for the requested page. Page and limit are clamped to
// a minimum of 1; a page past the end yields empty items with the counts
// intact, never an error.
func paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	pageItems := items[skip:end]
	if pageItems == nil {
		pageItems = []T{}
	}
	return Page[T]{
		Items:      pageItems,
		TotalCount: total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// sortPostsNewestFirst orders posts by creation time descending, ties broken
// by id so ordering is stable across calls and page boundaries.
func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID < posts[j].ID
	})
}

// sortCommentsOldestFirst orders comments chronologically, ties by id.
func sortCommentsOldestFirst(comments []models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
}
