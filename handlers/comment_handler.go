package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"api/models"
	"api/services"
)

// CommentHandler serves the comment endpoints nested under /posts/{id}.
type CommentHandler struct {
	Comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	comments, err := h.Comments.List(r.Context(), postID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"success": true, "data": comments, "count": len(comments)})
}

type commentRequest struct {
	Content string `json:"content" validate:"required,min=3,max=2000"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	comment, err := h.Comments.Create(r.Context(), requesterID(r), postID, req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, comment)
}

// commentPath extracts the post and comment ids from the nested route.
func commentPath(r *http.Request) (postID, commentID models.ID, err error) {
	vars := mux.Vars(r)
	if postID, err = pathID(vars, "id"); err != nil {
		return "", "", err
	}
	if commentID, err = pathID(vars, "commentId"); err != nil {
		return "", "", err
	}
	return postID, commentID, nil
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID, commentID, err := commentPath(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	comment, err := h.Comments.Update(r.Context(), requesterID(r), postID, commentID, req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, commentID, err := commentPath(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	comment, err := h.Comments.Delete(r.Context(), requesterID(r), postID, commentID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, comment)
}

func (h *CommentHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, commentID, err := commentPath(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	comment, action, err := h.Comments.ToggleLike(r.Context(), requesterID(r), postID, commentID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"success": true, "data": comment, "message": action})
}
