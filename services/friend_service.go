package services

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"api/errs"
	"api/models"
	"api/repositories"
)

// FriendService drives the friend-request lifecycle:
// pending -> accepted | rejected, with no way out of a terminal state.
// Friendship itself is only granted on acceptance, via the graph service.
type FriendService struct {
	users    repositories.UserRepository
	requests repositories.FriendRequestRepository
	graph    *Graph
}

func NewFriendService(users repositories.UserRepository, requests repositories.FriendRequestRepository, graph *Graph) *FriendService {
	return &FriendService{users: users, requests: requests, graph: graph}
}

// Send creates a pending request from sender to receiver. A second pending
// request between the same pair is allowed; only self-requests and requests
// to an existing friend are refused.
func (s *FriendService) Send(ctx context.Context, sender, receiver models.ID) (*models.FriendRequest, error) {
	if sender == receiver {
		return nil, errs.New(errs.KindInvalid, "cannot send a friend request to yourself")
	}
	if _, err := s.users.GetByID(ctx, receiver); err != nil {
		return nil, err
	}
	me, err := s.users.GetByID(ctx, sender)
	if err != nil {
		return nil, err
	}
	if models.ContainsID(me.Friends, receiver) {
		return nil, errs.New(errs.KindConflict, "already friends with this user")
	}

	now := time.Now().UTC()
	request := &models.FriendRequest{
		ID:        models.NewID(),
		Sender:    sender,
		Receiver:  receiver,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// Accept settles the request as accepted and makes the friendship symmetric.
// Only the receiver may accept, and only from the pending state.
func (s *FriendService) Accept(ctx context.Context, requester, requestID models.ID) (*models.FriendRequest, error) {
	request, err := s.settle(ctx, requester, requestID, models.StatusAccepted)
	if err != nil {
		return nil, err
	}
	if err := s.graph.Befriend(ctx, request.Sender, request.Receiver); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"sender":   request.Sender,
		"receiver": request.Receiver,
	}).Info("friend request accepted")
	return request, nil
}

// Reject settles the request as rejected. No friends sets are touched.
func (s *FriendService) Reject(ctx context.Context, requester, requestID models.ID) (*models.FriendRequest, error) {
	return s.settle(ctx, requester, requestID, models.StatusRejected)
}

func (s *FriendService) settle(ctx context.Context, requester, requestID models.ID, status models.RequestStatus) (*models.FriendRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Receiver != requester {
		return nil, errs.New(errs.KindUnauthorized, "only the receiver can settle a friend request")
	}
	if request.Status != models.StatusPending {
		return nil, errs.Newf(errs.KindConflict, "friend request already %s", request.Status)
	}
	request.Status = status
	request.UpdatedAt = time.Now().UTC()
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListIncoming returns the user's pending requests, newest first.
func (s *FriendService) ListIncoming(ctx context.Context, user models.ID) ([]models.FriendRequest, error) {
	if _, err := s.users.GetByID(ctx, user); err != nil {
		return nil, err
	}
	all, err := s.requests.ByReceiver(ctx, user)
	if err != nil {
		return nil, err
	}
	pending := all[:0]
	for _, req := range all {
		if req.Status == models.StatusPending {
			pending = append(pending, req)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if !pending[i].CreatedAt.Equal(pending[j].CreatedAt) {
			return pending[i].CreatedAt.After(pending[j].CreatedAt)
		}
		return pending[i].ID < pending[j].ID
	})
	return pending, nil
}
