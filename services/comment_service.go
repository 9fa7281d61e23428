package services

import (
	"context"
	"strings"
	"time"

	"api/errs"
	"api/models"
	"api/monitoring"
	"api/repositories"
)

// CommentService implements the comment operations under a post.
type CommentService struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	graph    *Graph
}

func NewCommentService(
	users repositories.UserRepository,
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	graph *Graph,
) *CommentService {
	return &CommentService{users: users, posts: posts, comments: comments, graph: graph}
}

func (s *CommentService) Create(ctx context.Context, author, postID models.ID, content string) (*models.Comment, error) {
	comment := &models.Comment{
		ID:        models.NewID(),
		Content:   strings.TrimSpace(content),
		Author:    author,
		Post:      postID,
		LikedBy:   []models.ID{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.graph.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	monitoring.CommentsCreated.Inc()
	return comment, nil
}

// List returns a post's comments in chronological order.
func (s *CommentService) List(ctx context.Context, postID models.ID) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	sortCommentsOldestFirst(comments)
	return comments, nil
}

// get loads a comment and verifies it belongs to the post it was addressed
// under; a comment reached through the wrong post path does not exist.
func (s *CommentService) get(ctx context.Context, postID, id models.ID) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Post != postID {
		return nil, errs.New(errs.KindNotFound, "comment not found")
	}
	return comment, nil
}

// Update replaces the comment's content. Author only.
func (s *CommentService) Update(ctx context.Context, requester, postID, id models.ID, content string) (*models.Comment, error) {
	comment, err := s.get(ctx, postID, id)
	if err != nil {
		return nil, err
	}
	if comment.Author != requester {
		return nil, errs.New(errs.KindUnauthorized, "only the author can update this comment")
	}
	comment.Content = strings.TrimSpace(content)
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment and its back-reference in the parent post.
// Author only.
func (s *CommentService) Delete(ctx context.Context, requester, postID, id models.ID) (*models.Comment, error) {
	comment, err := s.get(ctx, postID, id)
	if err != nil {
		return nil, err
	}
	if comment.Author != requester {
		return nil, errs.New(errs.KindUnauthorized, "only the author can delete this comment")
	}
	if err := s.graph.DeleteComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleLike mirrors the post like toggle on a comment.
func (s *CommentService) ToggleLike(ctx context.Context, requester, postID, id models.ID) (*models.Comment, string, error) {
	if _, err := s.users.GetByID(ctx, requester); err != nil {
		return nil, "", err
	}
	comment, err := s.get(ctx, postID, id)
	if err != nil {
		return nil, "", err
	}
	action := LikeAdded
	if models.ContainsID(comment.LikedBy, requester) {
		comment.LikedBy = models.RemoveID(comment.LikedBy, requester)
		action = LikeRemoved
	} else {
		comment.LikedBy = models.AddID(comment.LikedBy, requester)
	}
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, "", err
	}
	monitoring.LikesToggled.WithLabelValues("comment").Inc()
	return comment, action, nil
}
