package repositories

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"api/database"
	"api/errs"
	"api/models"
)

type friendRequestRepository struct {
	db *database.DB
}

func NewFriendRequestRepository(db *database.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	return putDoc(ctx, r.db, prefixRequest+string(request.ID), request)
}

func (r *friendRequestRepository) GetByID(ctx context.Context, id models.ID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := getDoc(ctx, r.db, prefixRequest+string(id), &request)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errs.New(errs.KindNotFound, "friend request not found")
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *friendRequestRepository) Update(ctx context.Context, request *models.FriendRequest) error {
	return putDoc(ctx, r.db, prefixRequest+string(request.ID), request)
}

func (r *friendRequestRepository) Delete(ctx context.Context, id models.ID) error {
	return deleteDoc(ctx, r.db, prefixRequest+string(id))
}

func (r *friendRequestRepository) ByReceiver(ctx context.Context, receiver models.ID) ([]models.FriendRequest, error) {
	return r.filter(ctx, func(req *models.FriendRequest) bool { return req.Receiver == receiver })
}

// ByUser returns every request naming the user as either party.
func (r *friendRequestRepository) ByUser(ctx context.Context, user models.ID) ([]models.FriendRequest, error) {
	return r.filter(ctx, func(req *models.FriendRequest) bool {
		return req.Sender == user || req.Receiver == user
	})
}

func (r *friendRequestRepository) filter(ctx context.Context, keep func(*models.FriendRequest) bool) ([]models.FriendRequest, error) {
	all, err := scanDocs[models.FriendRequest](ctx, r.db, prefixRequest)
	if err != nil {
		return nil, err
	}
	requests := all[:0]
	for _, req := range all {
		if keep(&req) {
			requests = append(requests, req)
		}
	}
	return requests, nil
}
