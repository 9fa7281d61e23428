package models

import "time"

// RequestStatus is the lifecycle state of a friend request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// FriendRequest records a pending or settled friendship offer.
// Sender and Receiver are always distinct users. Accepted and rejected are
// terminal states.
type FriendRequest struct {
	ID        ID            `json:"id"`
	Sender    ID            `json:"sender"`
	Receiver  ID            `json:"receiver"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
