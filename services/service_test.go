package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"api/database"
	"api/models"
	"api/repositories"
)

// testEnv wires every service over a fresh in-memory store.
type testEnv struct {
	ctx      context.Context
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	requests repositories.FriendRequestRepository
	graph    *Graph
	auth     *AuthService
	userSvc  *UserService
	postSvc  *PostService
	comSvc   *CommentService
	friends  *FriendService
	feeds    *FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(database.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := repositories.NewUserRepository(db)
	posts := repositories.NewPostRepository(db)
	comments := repositories.NewCommentRepository(db)
	requests := repositories.NewFriendRequestRepository(db)
	sessions := repositories.NewSessionRepository(db)
	graph := NewGraph(users, posts, comments, requests)

	return &testEnv{
		ctx:      context.Background(),
		users:    users,
		posts:    posts,
		comments: comments,
		requests: requests,
		graph:    graph,
		auth:     NewAuthService(users, sessions, time.Hour),
		userSvc:  NewUserService(users, graph),
		postSvc:  NewPostService(users, posts, graph),
		comSvc:   NewCommentService(users, posts, comments, graph),
		friends:  NewFriendService(users, requests, graph),
		feeds:    NewFeedService(users, posts, comments),
	}
}

// addUser registers a user through the real registration path.
func (e *testEnv) addUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.auth.Register(e.ctx, RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		Name:     username,
	})
	require.NoError(t, err)
	return user
}

// addPost writes a post with an explicit creation time so ordering tests are
// deterministic.
func (e *testEnv) addPost(t *testing.T, author models.ID, title string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:        models.NewID(),
		Title:     title,
		Content:   "content of " + title,
		Author:    author,
		LikedBy:   []models.ID{},
		Comments:  []models.ID{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, e.graph.CreatePost(e.ctx, post))
	return post
}

// addComment writes a comment with an explicit creation time.
func (e *testEnv) addComment(t *testing.T, author, postID models.ID, content string, createdAt time.Time) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ID:        models.NewID(),
		Content:   content,
		Author:    author,
		Post:      postID,
		LikedBy:   []models.ID{},
		CreatedAt: createdAt,
	}
	require.NoError(t, e.graph.CreateComment(e.ctx, comment))
	return comment
}

// befriend runs the full request/accept flow between two users.
func (e *testEnv) befriend(t *testing.T, a, b *models.User) {
	t.Helper()
	request, err := e.friends.Send(e.ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = e.friends.Accept(e.ctx, b.ID, request.ID)
	require.NoError(t, err)
}

func (e *testEnv) reload(t *testing.T, id models.ID) *models.User {
	t.Helper()
	user, err := e.users.GetByID(e.ctx, id)
	require.NoError(t, err)
	return user
}

func nowBase() time.Time { return time.Now().UTC().Truncate(time.Second) }

func minutes(n int) time.Duration { return time.Duration(n) * time.Minute }

func titleN(n int) string { return fmt.Sprintf("post %02d", n) }
