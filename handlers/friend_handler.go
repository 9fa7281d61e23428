package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"api/errs"
	"api/models"
	"api/services"
)

// FriendHandler serves the /requests endpoints.
type FriendHandler struct {
	Friends *services.FriendService
}

func NewFriendHandler(friends *services.FriendService) *FriendHandler {
	return &FriendHandler{Friends: friends}
}

// List returns the requester's pending incoming requests.
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Friends.ListIncoming(r.Context(), requesterID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{"success": true, "data": requests, "count": len(requests)})
}

type sendRequestRequest struct {
	Receiver string `json:"receiver" validate:"required"`
}

func (h *FriendHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequestRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	receiver, err := models.ParseID(req.Receiver)
	if err != nil {
		// A malformed receiver id can never name an existing user.
		respondError(w, r, errs.New(errs.KindNotFound, "user not found"))
		return
	}
	request, err := h.Friends.Send(r.Context(), requesterID(r), receiver)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, request)
}

func (h *FriendHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	request, err := h.Friends.Accept(r.Context(), requesterID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, request)
}

func (h *FriendHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	request, err := h.Friends.Reject(r.Context(), requesterID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, request)
}
