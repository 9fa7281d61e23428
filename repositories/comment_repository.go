package repositories

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"api/database"
	"api/errs"
	"api/models"
)

type commentRepository struct {
	db *database.DB
}

func NewCommentRepository(db *database.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return putDoc(ctx, r.db, prefixComment+string(comment.ID), comment)
}

func (r *commentRepository) GetByID(ctx context.Context, id models.ID) (*models.Comment, error) {
	var comment models.Comment
	err := getDoc(ctx, r.db, prefixComment+string(id), &comment)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errs.New(errs.KindNotFound, "comment not found")
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return putDoc(ctx, r.db, prefixComment+string(comment.ID), comment)
}

func (r *commentRepository) Delete(ctx context.Context, id models.ID) error {
	return deleteDoc(ctx, r.db, prefixComment+string(id))
}

func (r *commentRepository) All(ctx context.Context) ([]models.Comment, error) {
	return scanDocs[models.Comment](ctx, r.db, prefixComment)
}

func (r *commentRepository) ByPost(ctx context.Context, post models.ID) ([]models.Comment, error) {
	return r.filter(ctx, func(c *models.Comment) bool { return c.Post == post })
}

func (r *commentRepository) ByAuthor(ctx context.Context, author models.ID) ([]models.Comment, error) {
	return r.filter(ctx, func(c *models.Comment) bool { return c.Author == author })
}

func (r *commentRepository) filter(ctx context.Context, keep func(*models.Comment) bool) ([]models.Comment, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	comments := all[:0]
	for _, c := range all {
		if keep(&c) {
			comments = append(comments, c)
		}
	}
	return comments, nil
}
