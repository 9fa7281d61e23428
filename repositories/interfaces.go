package repositories

import (
	"context"
	"time"

	"api/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id models.ID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id models.ID) error
	All(ctx context.Context) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id models.ID) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id models.ID) error
	All(ctx context.Context) ([]models.Post, error)
	ByAuthor(ctx context.Context, author models.ID) ([]models.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id models.ID) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id models.ID) error
	All(ctx context.Context) ([]models.Comment, error)
	ByPost(ctx context.Context, post models.ID) ([]models.Comment, error)
	ByAuthor(ctx context.Context, author models.ID) ([]models.Comment, error)
}

type FriendRequestRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	GetByID(ctx context.Context, id models.ID) (*models.FriendRequest, error)
	Update(ctx context.Context, request *models.FriendRequest) error
	Delete(ctx context.Context, id models.ID) error
	ByReceiver(ctx context.Context, receiver models.ID) ([]models.FriendRequest, error)
	ByUser(ctx context.Context, user models.ID) ([]models.FriendRequest, error)
}

type SessionRepository interface {
	Put(ctx context.Context, token string, user models.ID, ttl time.Duration) error
	GetUser(ctx context.Context, token string) (models.ID, error)
	Delete(ctx context.Context, token string) error
}
