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

// Like toggle outcomes, reported verbatim in the response message.
const (
	LikeAdded   = "Like added"
	LikeRemoved = "Like removed"
)

// PostService implements the post operations; all graph-touching mutations go
// through Graph.
type PostService struct {
	users repositories.UserRepository
	posts repositories.PostRepository
	graph *Graph
}

func NewPostService(users repositories.UserRepository, posts repositories.PostRepository, graph *Graph) *PostService {
	return &PostService{users: users, posts: posts, graph: graph}
}

// CreatePostInput carries the validated payload for Create.
type CreatePostInput struct {
	Title   string
	Content string
}

func (s *PostService) Create(ctx context.Context, author models.ID, in CreatePostInput) (*models.Post, error) {
	now := time.Now().UTC()
	post := &models.Post{
		ID:        models.NewID(),
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Author:    author,
		LikedBy:   []models.ID{},
		Comments:  []models.ID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.graph.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	monitoring.PostsCreated.Inc()
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id models.ID) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListOwn returns the requester's posts, newest first.
func (s *PostService) ListOwn(ctx context.Context, requester models.ID, page, limit int) (Page[models.Post], error) {
	if _, err := s.users.GetByID(ctx, requester); err != nil {
		return Page[models.Post]{}, err
	}
	posts, err := s.posts.ByAuthor(ctx, requester)
	if err != nil {
		return Page[models.Post]{}, err
	}
	sortPostsNewestFirst(posts)
	return paginate(posts, page, limit), nil
}

// UpdatePostInput carries the updatable fields; nil means leave unchanged.
type UpdatePostInput struct {
	Title   *string
	Content *string
}

// Update modifies title/content. Only the author may update; the author field
// itself is immutable.
func (s *PostService) Update(ctx context.Context, requester, id models.ID, in UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Author != requester {
		return nil, errs.New(errs.KindUnauthorized, "only the author can update this post")
	}
	if in.Title != nil {
		post.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		post.Content = strings.TrimSpace(*in.Content)
	}
	post.UpdatedAt = time.Now().UTC()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post and cascades through its comments. Author only.
func (s *PostService) Delete(ctx context.Context, requester, id models.ID) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Author != requester {
		return nil, errs.New(errs.KindUnauthorized, "only the author can delete this post")
	}
	if err := s.graph.DeletePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ToggleLike flips the requester's presence in the post's liked-by set and
// reports which way it went. Anyone may like any post.
func (s *PostService) ToggleLike(ctx context.Context, requester, id models.ID) (*models.Post, string, error) {
	if _, err := s.users.GetByID(ctx, requester); err != nil {
		return nil, "", err
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	action := LikeAdded
	if models.ContainsID(post.LikedBy, requester) {
		post.LikedBy = models.RemoveID(post.LikedBy, requester)
		action = LikeRemoved
	} else {
		post.LikedBy = models.AddID(post.LikedBy, requester)
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, "", err
	}
	monitoring.LikesToggled.WithLabelValues("post").Inc()
	return post, action, nil
}
