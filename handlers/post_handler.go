package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"api/services"
)

// PostHandler serves the /posts endpoints.
type PostHandler struct {
	Posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{Posts: posts}
}

// List returns the requester's own posts, paginated.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	result, err := h.Posts.ListOwn(r.Context(), requesterID(r), page, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondPage(w, result.Items, result.TotalCount, result.Page, result.TotalPages)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	post, err := h.Posts.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, post)
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=120"`
	Content string `json:"content" validate:"required,min=3,max=2000"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	post, err := h.Posts.Create(r.Context(), requesterID(r), services.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, post)
}

type updatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=3,max=120"`
	Content *string `json:"content" validate:"omitempty,min=3,max=2000"`
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req updatePostRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	post, err := h.Posts.Update(r.Context(), requesterID(r), id, services.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	post, err := h.Posts.Delete(r.Context(), requesterID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, post)
}

func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	post, action, err := h.Posts.ToggleLike(r.Context(), requesterID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"success": true, "data": post, "message": action})
}
