package repositories

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"api/database"
	"api/errs"
	"api/models"
)

type postRepository struct {
	db *database.DB
}

func NewPostRepository(db *database.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return putDoc(ctx, r.db, prefixPost+string(post.ID), post)
}

func (r *postRepository) GetByID(ctx context.Context, id models.ID) (*models.Post, error) {
	var post models.Post
	err := getDoc(ctx, r.db, prefixPost+string(id), &post)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errs.New(errs.KindNotFound, "post not found")
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return putDoc(ctx, r.db, prefixPost+string(post.ID), post)
}

func (r *postRepository) Delete(ctx context.Context, id models.ID) error {
	return deleteDoc(ctx, r.db, prefixPost+string(id))
}

func (r *postRepository) All(ctx context.Context) ([]models.Post, error) {
	return scanDocs[models.Post](ctx, r.db, prefixPost)
}

func (r *postRepository) ByAuthor(ctx context.Context, author models.ID) ([]models.Post, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	posts := all[:0]
	for _, p := range all {
		if p.Author == author {
			posts = append(posts, p)
		}
	}
	return posts, nil
}
