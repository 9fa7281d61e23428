package handlers

import (
	"context"
	"net/http"

	"api/dto"
	"api/models"
	"api/services"
)

// FeedHandler serves the three /feed endpoints.
type FeedHandler struct {
	Feeds *services.FeedService
}

func NewFeedHandler(feeds *services.FeedService) *FeedHandler {
	return &FeedHandler{Feeds: feeds}
}

func (h *FeedHandler) Direct(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.Feeds.Direct)
}

func (h *FeedHandler) FriendComments(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.Feeds.FriendComments)
}

func (h *FeedHandler) FriendLiked(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.Feeds.FriendLiked)
}

func (h *FeedHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	query func(context.Context, models.ID, int, int) (services.Page[services.FeedPost], error),
) {
	page, limit := parsePagination(r)
	result, err := query(r.Context(), requesterID(r), page, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	items := make([]*dto.FeedPost, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.NewFeedPost(&item.Post, item.AuthorUser, item.Comments)
	}
	respondPage(w, items, result.TotalCount, result.Page, result.TotalPages)
}
