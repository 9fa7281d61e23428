package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/errs"
	"api/models"
)

func TestSendFriendRequest(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")

	request, err := e.friends.Send(e.ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, request.Status)
	assert.Equal(t, alice.ID, request.Sender)
	assert.Equal(t, bob.ID, request.Receiver)

	// Sending grants nothing until acceptance.
	assert.Empty(t, e.reload(t, alice.ID).Friends)
	assert.Empty(t, e.reload(t, bob.ID).Friends)
}

func TestSendFriendRequest_ToSelf(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")

	_, err := e.friends.Send(e.ctx, alice.ID, alice.ID)
	assert.True(t, errs.IsKind(err, errs.KindInvalid))
}

func TestSendFriendRequest_ReceiverMissing(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")

	_, err := e.friends.Send(e.ctx, alice.ID, models.NewID())
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestSendFriendRequest_AlreadyFriends(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	e.befriend(t, alice, bob)

	_, err := e.friends.Send(e.ctx, alice.ID, bob.ID)
	assert.True(t, errs.IsKind(err, errs.KindConflict))
}

func TestSendFriendRequest_DuplicatePendingAllowed(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")

	_, err := e.friends.Send(e.ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = e.friends.Send(e.ctx, alice.ID, bob.ID)
	assert.NoError(t, err)
}

func TestAcceptFriendRequest_SymmetricFriendship(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")

	request, err := e.friends.Send(e.ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	accepted, err := e.friends.Accept(e.ctx, bob.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	aliceFriends := e.reload(t, alice.ID).Friends
	bobFriends := e.reload(t, bob.ID).Friends
	assert.Equal(t, models.ContainsID(aliceFriends, bob.ID), models.ContainsID(bobFriends, alice.ID))
	assert.True(t, models.ContainsID(aliceFriends, bob.ID))
}

func TestAcceptFriendRequest_OnlyReceiver(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")

	request, err := e.friends.Send(e.ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = e.friends.Accept(e.ctx, alice.ID, request.ID)
	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))

	stored, err := e.requests.GetByID(e.ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Empty(t, e.reload(t, alice.ID).Friends)
}

func TestAcceptFriendRequest_NotFound(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")

	_, err := e.friends.Accept(e.ctx, alice.ID, models.NewID())
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestFriendRequest_TerminalStates(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")

	request, err := e.friends.Send(e.ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = e.friends.Reject(e.ctx, bob.ID, request.ID)
	require.NoError(t, err)

	// No way out of a terminal state.
	_, err = e.friends.Accept(e.ctx, bob.ID, request.ID)
	assert.True(t, errs.IsKind(err, errs.KindConflict))
	_, err = e.friends.Reject(e.ctx, bob.ID, request.ID)
	assert.True(t, errs.IsKind(err, errs.KindConflict))
}

func TestRejectFriendRequest_NoFriendsMutation(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")

	request, err := e.friends.Send(e.ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	rejected, err := e.friends.Reject(e.ctx, bob.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	assert.Empty(t, e.reload(t, alice.ID).Friends)
	assert.Empty(t, e.reload(t, bob.ID).Friends)
}

func TestListIncoming_PendingOnly(t *testing.T) {
	e := newTestEnv(t)
	alice := e.addUser(t, "alice")
	bob := e.addUser(t, "bob")
	carol := e.addUser(t, "carol")

	first, err := e.friends.Send(e.ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	second, err := e.friends.Send(e.ctx, bob.ID, carol.ID)
	require.NoError(t, err)
	_, err = e.friends.Reject(e.ctx, carol.ID, first.ID)
	require.NoError(t, err)

	pending, err := e.friends.ListIncoming(e.ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestListIncoming_NewestFirst(t *testing.T) {
	e := newTestEnv(t)
	carol := e.addUser(t, "carol")
	base := time.Now().UTC()

	var ids []models.ID
	for i, name := range []string{"alice", "bob", "dave"} {
		sender := e.addUser(t, name)
		request := &models.FriendRequest{
			ID:        models.NewID(),
			Sender:    sender.ID,
			Receiver:  carol.ID,
			Status:    models.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, e.requests.Create(e.ctx, request))
		ids = append(ids, request.ID)
	}

	pending, err := e.friends.ListIncoming(e.ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, ids[2], pending[0].ID)
	assert.Equal(t, ids[0], pending[2].ID)
}
