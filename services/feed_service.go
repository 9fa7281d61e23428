package services

import (
	"context"

	"api/models"
	"api/monitoring"
	"api/repositories"
)

// FeedPost is a post prepared for a feed response: the author record is
// attached (sanitized at the DTO layer), and for the friend-comment feed only
// the matching friend-authored comments ride along.
type FeedPost struct {
	models.Post
	AuthorUser *models.User
	Comments   []models.Comment
}

// FeedService composes the three read-only feed queries. The store cannot
// join, so each query is a prefix scan plus application-side filter/group,
// ordered newest first.
type FeedService struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
}

func NewFeedService(users repositories.UserRepository, posts repositories.PostRepository, comments repositories.CommentRepository) *FeedService {
	return &FeedService{users: users, posts: posts, comments: comments}
}

// Direct returns posts authored by the requester's friends.
func (s *FeedService) Direct(ctx context.Context, requester models.ID, page, limit int) (Page[FeedPost], error) {
	friends, err := s.friendsOf(ctx, requester)
	if err != nil {
		return Page[FeedPost]{}, err
	}
	all, err := s.posts.All(ctx)
	if err != nil {
		return Page[FeedPost]{}, err
	}
	matched := all[:0]
	for _, p := range all {
		if models.ContainsID(friends, p.Author) {
			matched = append(matched, p)
		}
	}
	monitoring.FeedRequests.WithLabelValues("direct").Inc()
	return s.assemble(ctx, matched, nil, page, limit)
}

// FriendComments returns strangers' posts that carry at least one comment by
// a friend of the requester. Comments live in their own collection, so this
// is an expand/filter/collapse join: fetch comments, keep the friend-authored
// ones, regroup them under their posts, then keep only posts that gained at
// least one comment.
func (s *FeedService) FriendComments(ctx context.Context, requester models.ID, page, limit int) (Page[FeedPost], error) {
	friends, err := s.friendsOf(ctx, requester)
	if err != nil {
		return Page[FeedPost]{}, err
	}
	all, err := s.posts.All(ctx)
	if err != nil {
		return Page[FeedPost]{}, err
	}
	comments, err := s.comments.All(ctx)
	if err != nil {
		return Page[FeedPost]{}, err
	}

	byPost := make(map[models.ID][]models.Comment)
	for _, c := range comments {
		if models.ContainsID(friends, c.Author) {
			byPost[c.Post] = append(byPost[c.Post], c)
		}
	}

	var matched []models.Post
	attached := make(map[models.ID][]models.Comment)
	for _, p := range all {
		if !s.stranger(friends, requester, p.Author) {
			continue
		}
		friendComments := byPost[p.ID]
		if len(friendComments) == 0 {
			continue
		}
		sortCommentsOldestFirst(friendComments)
		matched = append(matched, p)
		attached[p.ID] = friendComments
	}
	monitoring.FeedRequests.WithLabelValues("friend_comment").Inc()
	return s.assemble(ctx, matched, attached, page, limit)
}

// FriendLiked returns strangers' posts that at least one friend has liked.
// Likes are inline on the post document, so this is a pure set filter.
func (s *FeedService) FriendLiked(ctx context.Context, requester models.ID, page, limit int) (Page[FeedPost], error) {
	friends, err := s.friendsOf(ctx, requester)
	if err != nil {
		return Page[FeedPost]{}, err
	}
	all, err := s.posts.All(ctx)
	if err != nil {
		return Page[FeedPost]{}, err
	}
	matched := all[:0]
	for _, p := range all {
		if s.stranger(friends, requester, p.Author) && models.IntersectsIDs(p.LikedBy, friends) {
			matched = append(matched, p)
		}
	}
	monitoring.FeedRequests.WithLabelValues("friend_liked").Inc()
	return s.assemble(ctx, matched, nil, page, limit)
}

func (s *FeedService) friendsOf(ctx context.Context, requester models.ID) ([]models.ID, error) {
	user, err := s.users.GetByID(ctx, requester)
	if err != nil {
		return nil, err
	}
	return user.Friends, nil
}

// stranger reports whether author is neither the requester nor a friend.
func (s *FeedService) stranger(friends []models.ID, requester, author models.ID) bool {
	return author != requester && !models.ContainsID(friends, author)
}

// assemble sorts, paginates and attaches author records to the page items.
func (s *FeedService) assemble(ctx context.Context, posts []models.Post, comments map[models.ID][]models.Comment, page, limit int) (Page[FeedPost], error) {
	sortPostsNewestFirst(posts)
	paged := paginate(posts, page, limit)

	authors := make(map[models.ID]*models.User)
	items := make([]FeedPost, 0, len(paged.Items))
	for _, p := range paged.Items {
		author, ok := authors[p.Author]
		if !ok {
			var err error
			author, err = s.users.GetByID(ctx, p.Author)
			if err != nil {
				return Page[FeedPost]{}, err
			}
			authors[p.Author] = author
		}
		item := FeedPost{Post: p, AuthorUser: author}
		if comments != nil {
			item.Comments = comments[p.ID]
		}
		items = append(items, item)
	}

	return Page[FeedPost]{
		Items:      items,
		TotalCount: paged.TotalCount,
		Page:       paged.Page,
		TotalPages: paged.TotalPages,
	}, nil
}
