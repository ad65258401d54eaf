package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanalmatech/ummahMatch/models"
)

func newMatchFixture() (*MatchService, *fakeLikeLedger, *fakeMatchRegistry, *fakeBlockLedger, *fakeNotifier) {
	likes := &fakeLikeLedger{}
	matches := newFakeMatchRegistry()
	blocks := &fakeBlockLedger{matches: matches}
	notifier := &fakeNotifier{}
	service := &MatchService{
		Likes:    likes,
		Dislikes: &fakeDislikeLedger{},
		Blocks:   blocks,
		Matches:  matches,
		Profiles: newFakeProfileStore(
			models.UserProfile{ID: "alice", Name: "Alice"},
			models.UserProfile{ID: "bob", Name: "Bob"},
		),
		Notifier: notifier,
	}
	return service, likes, matches, blocks, notifier
}

func TestLikeUserWithoutReciprocalLike(t *testing.T) {
	service, likes, matches, _, notifier := newMatchFixture()
	ctx := context.Background()

	isMatch, err := service.LikeUser(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, isMatch)

	recorded, err := likes.Exists(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, recorded)

	exists, err := matches.Exists(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	sent := notifier.sentTo("bob")
	require.Len(t, sent, 1)
	assert.Equal(t, models.NotificationTypeLike, sent[0].Type)
	assert.Equal(t, "New Like!", sent[0].Title)
	assert.Equal(t, "Alice liked your profile.", sent[0].Description)
	assert.Equal(t, "/users/alice", sent[0].Link)
	require.NotNil(t, sent[0].From)
	assert.Equal(t, "alice", sent[0].From.ID)
}

func TestLikeUserReciprocalCreatesMatch(t *testing.T) {
	service, _, matches, _, notifier := newMatchFixture()
	ctx := context.Background()

	_, err := service.LikeUser(ctx, "alice", "bob")
	require.NoError(t, err)

	isMatch, err := service.LikeUser(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, isMatch)

	exists, err := matches.Exists(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, exists)

	// One like notification to bob, then one match notification each,
	// naming the other user and linking to messages.
	aliceMatches := 0
	for _, data := range notifier.sentTo("alice") {
		if data.Type == models.NotificationTypeMatch {
			aliceMatches++
			assert.Equal(t, "You and Bob have liked each other.", data.Description)
			assert.Equal(t, "/messages", data.Link)
		}
	}
	bobMatches := 0
	for _, data := range notifier.sentTo("bob") {
		if data.Type == models.NotificationTypeMatch {
			bobMatches++
			assert.Equal(t, "You and Alice have liked each other.", data.Description)
			assert.Equal(t, "/messages", data.Link)
		}
	}
	assert.Equal(t, 1, aliceMatches)
	assert.Equal(t, 1, bobMatches)
}

func TestLikeUserExistingMatchNotReannounced(t *testing.T) {
	service, likes, matches, _, notifier := newMatchFixture()
	ctx := context.Background()

	require.NoError(t, likes.Record(ctx, "bob", "alice"))
	_, err := matches.CreateIfAbsent(ctx, models.Match{
		PairID:  models.PairID("alice", "bob"),
		UserIDs: models.SortedPair("alice", "bob"),
	})
	require.NoError(t, err)

	isMatch, err := service.LikeUser(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, isMatch)

	for _, n := range notifier.sent {
		assert.NotEqual(t, models.NotificationTypeMatch, n.data.Type)
	}
}

func TestLikeUserRejectsSelfAndEmpty(t *testing.T) {
	service, _, _, _, _ := newMatchFixture()
	ctx := context.Background()

	_, err := service.LikeUser(ctx, "alice", "alice")
	assert.True(t, IsInvalid(err))

	_, err = service.LikeUser(ctx, "", "bob")
	assert.True(t, IsInvalid(err))
}

func TestBlockUserRemovesMatch(t *testing.T) {
	service, _, matches, blocks, _ := newMatchFixture()
	ctx := context.Background()

	_, err := service.LikeUser(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = service.LikeUser(ctx, "bob", "alice")
	require.NoError(t, err)

	require.NoError(t, service.BlockUser(ctx, "alice", "bob"))

	exists, err := matches.Exists(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	blocked, err := blocks.BlockedIDs(ctx, "bob")
	require.NoError(t, err)
	assert.Contains(t, blocked, "alice")
}

func TestDislikeUser(t *testing.T) {
	service, _, _, _, _ := newMatchFixture()
	ctx := context.Background()

	require.NoError(t, service.DislikeUser(ctx, "alice", "bob"))

	assert.True(t, IsInvalid(service.DislikeUser(ctx, "alice", "alice")))
}
