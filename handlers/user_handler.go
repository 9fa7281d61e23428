package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"api/dto"
	"api/services"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"success": true, "data": dto.NewUsers(users), "count": len(users)})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	user, err := h.Users.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, dto.NewUser(user))
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=30"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name" validate:"omitempty,max=80"`
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
	Avatar   *string `json:"avatar" validate:"omitempty,url"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req updateUserRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	user, err := h.Users.Update(r.Context(), requesterID(r), id, services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, dto.NewUser(user))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	user, err := h.Users.Delete(r.Context(), requesterID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, dto.NewUser(user))
}

func (h *UserHandler) Friends(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	friends, err := h.Users.Friends(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"success": true, "data": dto.NewUsers(friends), "count": len(friends)})
}

func (h *UserHandler) Unfriend(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := pathID(vars, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	friendID, err := pathID(vars, "friendId")
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Users.Unfriend(r.Context(), requesterID(r), id, friendID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"success": true, "message": "friend removed"})
}
