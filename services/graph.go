package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"api/errs"
	"api/models"
	"api/repositories"
)

// Graph owns every mutation that touches more than one document. The store
// has no cross-document transactions and no referential integrity of its own,
// so all back-reference bookkeeping is sequenced here and nowhere else.
// Each step is a single-document write; the first failing step aborts the
// rest and is surfaced to the caller, completed steps are not rolled back.
type Graph struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	requests repositories.FriendRequestRepository
}

func NewGraph(
	users repositories.UserRepository,
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	requests repositories.FriendRequestRepository,
) *Graph {
	return &Graph{users: users, posts: posts, comments: comments, requests: requests}
}

// CreatePost stores the post and appends its id to the author's post list.
func (g *Graph) CreatePost(ctx context.Context, post *models.Post) error {
	author, err := g.users.GetByID(ctx, post.Author)
	if err != nil {
		return err
	}
	if err := g.posts.Create(ctx, post); err != nil {
		return err
	}
	author.Posts = models.AddID(author.Posts, post.ID)
	author.UpdatedAt = time.Now().UTC()
	return g.users.Update(ctx, author)
}

// DeletePost removes the post from its author's post list, deletes every
// comment on it, then deletes the post document. The post's inline liked-by
// and comment-id sets die with the document.
func (g *Graph) DeletePost(ctx context.Context, post *models.Post) error {
	author, err := g.users.GetByID(ctx, post.Author)
	if err == nil {
		author.Posts = models.RemoveID(author.Posts, post.ID)
		author.UpdatedAt = time.Now().UTC()
		if err := g.users.Update(ctx, author); err != nil {
			return err
		}
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return err
	}

	comments, err := g.comments.ByPost(ctx, post.ID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if err := g.comments.Delete(ctx, c.ID); err != nil {
			return err
		}
	}
	return g.posts.Delete(ctx, post.ID)
}

// CreateComment stores the comment and appends its id to the parent post.
func (g *Graph) CreateComment(ctx context.Context, comment *models.Comment) error {
	post, err := g.posts.GetByID(ctx, comment.Post)
	if err != nil {
		return err
	}
	if err := g.comments.Create(ctx, comment); err != nil {
		return err
	}
	post.Comments = models.AddID(post.Comments, comment.ID)
	return g.posts.Update(ctx, post)
}

// DeleteComment pulls the comment id out of its parent post, then deletes the
// record. A missing parent is tolerated so orphaned comments stay deletable.
func (g *Graph) DeleteComment(ctx context.Context, comment *models.Comment) error {
	post, err := g.posts.GetByID(ctx, comment.Post)
	if err == nil {
		post.Comments = models.RemoveID(post.Comments, comment.ID)
		if err := g.posts.Update(ctx, post); err != nil {
			return err
		}
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return err
	}
	return g.comments.Delete(ctx, comment.ID)
}

// Befriend adds each user to the other's friends set. Add-if-absent, so a
// repeated acceptance cannot duplicate an edge.
func (g *Graph) Befriend(ctx context.Context, a, b models.ID) error {
	return g.eachSide(ctx, a, b, models.AddID)
}

// Unfriend removes each user from the other's friends set. Both users must
// exist; the removal itself is a no-op on a side that lacks the edge.
func (g *Graph) Unfriend(ctx context.Context, a, b models.ID) error {
	return g.eachSide(ctx, a, b, models.RemoveID)
}

func (g *Graph) eachSide(ctx context.Context, a, b models.ID, apply func([]models.ID, models.ID) []models.ID) error {
	first, err := g.users.GetByID(ctx, a)
	if err != nil {
		return err
	}
	second, err := g.users.GetByID(ctx, b)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	first.Friends = apply(first.Friends, b)
	first.UpdatedAt = now
	if err := g.users.Update(ctx, first); err != nil {
		return err
	}
	second.Friends = apply(second.Friends, a)
	second.UpdatedAt = now
	return g.users.Update(ctx, second)
}

// DeleteUser runs the full account cascade, in order:
//  1. delete every post the user authored, with their comments
//  2. pull the user from every remaining post's liked-by set
//  3. pull the user from every comment's liked-by set
//  4. pull the user from every other user's friends set
//  5. delete every friend request naming the user as either party
//  6. delete the user's comments on other posts, unhooking each from its parent
//  7. delete the user document itself
func (g *Graph) DeleteUser(ctx context.Context, user *models.User) error {
	authored, err := g.posts.ByAuthor(ctx, user.ID)
	if err != nil {
		return err
	}
	for i := range authored {
		if err := g.DeletePost(ctx, &authored[i]); err != nil {
			return err
		}
	}

	remaining, err := g.posts.All(ctx)
	if err != nil {
		return err
	}
	for i := range remaining {
		p := &remaining[i]
		if models.ContainsID(p.LikedBy, user.ID) {
			p.LikedBy = models.RemoveID(p.LikedBy, user.ID)
			if err := g.posts.Update(ctx, p); err != nil {
				return err
			}
		}
	}

	comments, err := g.comments.All(ctx)
	if err != nil {
		return err
	}
	for i := range comments {
		c := &comments[i]
		if models.ContainsID(c.LikedBy, user.ID) {
			c.LikedBy = models.RemoveID(c.LikedBy, user.ID)
			if err := g.comments.Update(ctx, c); err != nil {
				return err
			}
		}
	}

	others, err := g.users.All(ctx)
	if err != nil {
		return err
	}
	for i := range others {
		o := &others[i]
		if o.ID != user.ID && models.ContainsID(o.Friends, user.ID) {
			o.Friends = models.RemoveID(o.Friends, user.ID)
			o.UpdatedAt = time.Now().UTC()
			if err := g.users.Update(ctx, o); err != nil {
				return err
			}
		}
	}

	requests, err := g.requests.ByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, req := range requests {
		if err := g.requests.Delete(ctx, req.ID); err != nil {
			return err
		}
	}

	authoredComments, err := g.comments.ByAuthor(ctx, user.ID)
	if err != nil {
		return err
	}
	for i := range authoredComments {
		if err := g.DeleteComment(ctx, &authoredComments[i]); err != nil {
			return err
		}
	}

	logrus.WithField("user", user.ID).Info("account cascade complete")
	return g.users.Delete(ctx, user.ID)
}
