package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/errs"
	"api/models"
)

func TestDirectFeed_FriendsPostsOnly(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	carol := e.addUser(t, "carol")
	e.befriend(t, alice, bob)

	base := nowBase()
	bobPost := e.addPost(t, bob.ID, "from bob", base)
	e.addPost(t, carol.ID, "from carol", base.Add(minutes(1)))
	e.addPost(t, alice.ID, "from alice", base.Add(minutes(2)))

	feed, err := e.feeds.Direct(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, bobPost.ID, feed.Items[0].ID)
	require.NotNil(t, feed.Items[0].AuthorUser)
	assert.Equal(t, "bob", feed.Items[0].AuthorUser.Username)
}

func TestDirectFeed_NewestFirst(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	e.befriend(t, alice, bob)

	base := nowBase()
	older := e.addPost(t, bob.ID, "older", base)
	newer := e.addPost(t, bob.ID, "newer", base.Add(minutes(1)))

	feed, err := e.feeds.Direct(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, newer.ID, feed.Items[0].ID)
	assert.Equal(t, older.ID, feed.Items[1].ID)
}

func TestDirectFeed_RequesterMissing(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.feeds.Direct(e.ctx, models.NewID(), 1, 10)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestFriendCommentFeed_OnlyFriendCommentsAttached(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	carol := e.addUser(t, "carol")
	dave := e.addUser(t, "dave")
	e.befriend(t, alice, bob)

	base := nowBase()
	strangerPost := e.addPost(t, carol.ID, "carol post", base)
	quiet := e.addPost(t, dave.ID, "dave post", base.Add(minutes(1)))

	bobComment := e.addComment(t, bob.ID, strangerPost.ID, "bob was here", base.Add(minutes(2)))
	e.addComment(t, dave.ID, strangerPost.ID, "dave was here", base.Add(minutes(3)))

	feed, err := e.feeds.FriendComments(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, strangerPost.ID, feed.Items[0].ID)

	// Only the friend's comment rides along, not the stranger's.
	require.Len(t, feed.Items[0].Comments, 1)
	assert.Equal(t, bobComment.ID, feed.Items[0].Comments[0].ID)

	// A stranger post with no friend comments never surfaces.
	for _, item := range feed.Items {
		assert.NotEqual(t, quiet.ID, item.ID)
	}
}

func TestFriendCommentFeed_ExcludesFriendAndOwnPosts(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	carol := e.addUser(t, "carol")
	e.befriend(t, alice, bob)
	e.befriend(t, alice, carol)

	base := nowBase()
	friendPost := e.addPost(t, carol.ID, "carol post", base)
	ownPost := e.addPost(t, alice.ID, "alice post", base.Add(minutes(1)))
	e.addComment(t, bob.ID, friendPost.ID, "bob was here", base.Add(minutes(2)))
	e.addComment(t, bob.ID, ownPost.ID, "bob again", base.Add(minutes(3)))

	feed, err := e.feeds.FriendComments(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
}

func TestFriendCommentFeed_CommentsOldestFirst(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	carol := e.addUser(t, "carol")
	e.befriend(t, alice, bob)

	base := nowBase()
	post := e.addPost(t, carol.ID, "carol post", base)
	second := e.addComment(t, bob.ID, post.ID, "second", base.Add(minutes(2)))
	first := e.addComment(t, bob.ID, post.ID, "first", base.Add(minutes(1)))

	feed, err := e.feeds.FriendComments(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	require.Len(t, feed.Items[0].Comments, 2)
	assert.Equal(t, first.ID, feed.Items[0].Comments[0].ID)
	assert.Equal(t, second.ID, feed.Items[0].Comments[1].ID)
}

func TestFriendLikedFeed_StrangerPostsLikedByFriends(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	carol := e.addUser(t, "carol")
	e.befriend(t, alice, bob)

	base := nowBase()
	liked := e.addPost(t, carol.ID, "liked", base)
	e.addPost(t, carol.ID, "not liked", base.Add(minutes(1)))

	_, _, err := e.postSvc.ToggleLike(e.ctx, bob.ID, liked.ID)
	require.NoError(t, err)

	feed, err := e.feeds.FriendLiked(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, liked.ID, feed.Items[0].ID)
}

func TestFriendLikedFeed_DisappearsAfterBefriendingAuthor(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	carol := e.addUser(t, "carol")
	e.befriend(t, alice, bob)

	post := e.addPost(t, carol.ID, "carol post", nowBase())
	_, _, err := e.postSvc.ToggleLike(e.ctx, bob.ID, post.ID)
	require.NoError(t, err)

	feed, err := e.feeds.FriendLiked(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	// Once the author is a friend the post moves to the direct feed instead.
	e.befriend(t, alice, carol)

	feed, err = e.feeds.FriendLiked(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)

	direct, err := e.feeds.Direct(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, direct.Items, 1)
	assert.Equal(t, post.ID, direct.Items[0].ID)
}

func TestFriendLikedFeed_OwnLikeNotEnough(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	carol := e.addUser(t, "carol")

	post := e.addPost(t, carol.ID, "carol post", nowBase())
	_, _, err := e.postSvc.ToggleLike(e.ctx, alice.ID, post.ID)
	require.NoError(t, err)

	feed, err := e.feeds.FriendLiked(e.ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
}

func TestDirectFeed_PaginationComplete(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	e.befriend(t, alice, bob)

	base := nowBase()
	for i := 0; i < 25; i++ {
		e.addPost(t, bob.ID, titleN(i), base.Add(minutes(i)))
	}

	seen := make(map[models.ID]bool)
	var previous *FeedPost
	for page := 1; page <= 3; page++ {
		result, err := e.feeds.Direct(e.ctx, alice.ID, page, 10)
		require.NoError(t, err)
		assert.Equal(t, 25, result.TotalCount)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, page, result.Page)
		if page < 3 {
			require.Len(t, result.Items, 10)
		} else {
			require.Len(t, result.Items, 5)
		}
		for i := range result.Items {
			item := &result.Items[i]
			assert.False(t, seen[item.ID], "post repeated across pages")
			seen[item.ID] = true
			if previous != nil {
				assert.False(t, item.CreatedAt.After(previous.CreatedAt), "order broken across page boundary")
			}
			previous = item
		}
	}
	assert.Len(t, seen, 25)
}

func TestDirectFeed_PageBeyondEnd(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	e.befriend(t, alice, bob)
	e.addPost(t, bob.ID, "only one", nowBase())

	feed, err := e.feeds.Direct(e.ctx, alice.ID, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
	assert.NotNil(t, feed.Items)
	assert.Equal(t, 1, feed.TotalCount)
	assert.Equal(t, 1, feed.TotalPages)
	assert.Equal(t, 5, feed.Page)
}
