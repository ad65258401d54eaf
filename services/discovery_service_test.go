package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanalmatech/ummahMatch/config"
	"github.com/allanalmatech/ummahMatch/models"
)

func testConfig() *config.Config {
	return &config.Config{
		FlagThreshold:   3,
		PreviewLimit:    2,
		BoostDuration:   30 * time.Minute,
		AIPoolSize:      50,
		FeedSize:        20,
		SearchLimit:     50,
		SearchPoolSize:  500,
		RegularPoolSize: 100,
		IDBatchSize:     30,
	}
}

func profileAt(id string, createdAt string) models.UserProfile {
	return models.UserProfile{ID: id, Name: id, Status: models.UserStatusActive, CreatedAt: createdAt}
}

func newDiscoveryFixture(profiles ...models.UserProfile) (*DiscoveryService, *fakeLikeLedger, *fakeDislikeLedger, *fakeBlockLedger, *fakeFlagCounter) {
	likes := &fakeLikeLedger{}
	dislikes := &fakeDislikeLedger{}
	blocks := &fakeBlockLedger{}
	flags := &fakeFlagCounter{counts: map[string]int{}}
	service := &DiscoveryService{
		Cfg:      testConfig(),
		Pool:     newFakeProfileStore(profiles...),
		Likes:    likes,
		Dislikes: dislikes,
		Blocks:   blocks,
		Flags:    flags,
	}
	return service, likes, dislikes, blocks, flags
}

func feedIDs(feed []models.UserProfile) []string {
	ids := make([]string, 0, len(feed))
	for _, profile := range feed {
		ids = append(ids, profile.ID)
	}
	return ids
}

func TestFeedExcludesInteractedAndBlockedUsers(t *testing.T) {
	service, likes, dislikes, blocks, _ := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		profileAt("liked", "2024-01-02T00:00:00Z"),
		profileAt("disliked", "2024-01-03T00:00:00Z"),
		profileAt("blocked", "2024-01-04T00:00:00Z"),
		profileAt("blocker", "2024-01-05T00:00:00Z"),
		profileAt("fresh", "2024-01-06T00:00:00Z"),
	)
	ctx := context.Background()

	require.NoError(t, likes.Record(ctx, "me", "liked"))
	require.NoError(t, dislikes.Record(ctx, "me", "disliked"))
	require.NoError(t, blocks.RecordWithMatchRemoval(ctx, "me", "blocked"))
	require.NoError(t, blocks.RecordWithMatchRemoval(ctx, "blocker", "me"))

	feed, err := service.GetDiscoverFeed(ctx, "me", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"fresh"}, feedIDs(feed))
}

func TestFeedBoostedProfilesComeFirst(t *testing.T) {
	until := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)
	boosted := profileAt("boosted", "2020-01-01T00:00:00Z")
	boosted.BoostActiveUntil = until

	service, _, _, _, _ := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		boosted,
		profileAt("newest", "2024-06-01T00:00:00Z"),
	)

	feed, err := service.GetDiscoverFeed(context.Background(), "me", 0)
	require.NoError(t, err)

	// The old boosted account outranks the newest one while its window
	// is open.
	assert.Equal(t, []string{"boosted", "newest"}, feedIDs(feed))
}

func TestFeedExpiredBoostDoesNotRank(t *testing.T) {
	expired := profileAt("expired", "2020-01-01T00:00:00Z")
	expired.BoostActiveUntil = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)

	service, _, _, _, _ := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		expired,
		profileAt("newest", "2024-06-01T00:00:00Z"),
	)

	feed, err := service.GetDiscoverFeed(context.Background(), "me", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"newest", "expired"}, feedIDs(feed))
}

func TestFeedFlagThreshold(t *testing.T) {
	service, _, _, _, flags := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		profileAt("twice-reported", "2024-01-02T00:00:00Z"),
		profileAt("thrice-reported", "2024-01-03T00:00:00Z"),
	)
	flags.counts["twice-reported"] = 2
	flags.counts["thrice-reported"] = 3

	feed, err := service.GetDiscoverFeed(context.Background(), "me", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"twice-reported"}, feedIDs(feed))
}

func TestFeedHidesOptedOutAndSuspendedProfiles(t *testing.T) {
	hidden := profileAt("hidden", "2024-01-02T00:00:00Z")
	hidden.Privacy = &models.PrivacySettings{ShowInSearch: false}
	suspended := profileAt("suspended", "2024-01-03T00:00:00Z")
	suspended.Status = models.UserStatusSuspended

	service, _, _, _, _ := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		hidden,
		suspended,
		profileAt("visible", "2024-01-04T00:00:00Z"),
	)

	feed, err := service.GetDiscoverFeed(context.Background(), "me", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"visible"}, feedIDs(feed))
}

func TestFeedTruncatesToCount(t *testing.T) {
	service, _, _, _, _ := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		profileAt("a", "2024-01-02T00:00:00Z"),
		profileAt("b", "2024-01-03T00:00:00Z"),
		profileAt("c", "2024-01-04T00:00:00Z"),
	)

	feed, err := service.GetDiscoverFeed(context.Background(), "me", 2)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestSearchKeepsLikedUsersButNotBlocked(t *testing.T) {
	service, likes, _, blocks, _ := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		profileAt("liked", "2024-01-02T00:00:00Z"),
		profileAt("blocked", "2024-01-03T00:00:00Z"),
	)
	ctx := context.Background()

	require.NoError(t, likes.Record(ctx, "me", "liked"))
	require.NoError(t, blocks.RecordWithMatchRemoval(ctx, "me", "blocked"))

	results, err := service.SearchUsers(ctx, "me", models.SearchFilters{})
	require.NoError(t, err)

	assert.Contains(t, feedIDs(results), "liked")
	assert.NotContains(t, feedIDs(results), "blocked")
	assert.NotContains(t, feedIDs(results), "me")
}

func TestSearchAppliesFilters(t *testing.T) {
	young := profileAt("young", "2024-01-02T00:00:00Z")
	young.Age = 22
	young.Gender = "female"
	older := profileAt("older", "2024-01-03T00:00:00Z")
	older.Age = 41
	older.Gender = "female"

	service, _, _, _, _ := newDiscoveryFixture(
		profileAt("me", "2024-01-01T00:00:00Z"),
		young,
		older,
	)

	results, err := service.SearchUsers(context.Background(), "me", models.SearchFilters{
		Gender: "female",
		MinAge: 20,
		MaxAge: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"young"}, feedIDs(results))
}

func TestSearchCapsResults(t *testing.T) {
	profiles := []models.UserProfile{profileAt("me", "2024-01-01T00:00:00Z")}
	for i := 0; i < 60; i++ {
		profiles = append(profiles, profileAt("candidate-"+string(rune('a'+i%26))+string(rune('a'+i/26)), "2024-02-01T00:00:00Z"))
	}
	service, _, _, _, _ := newDiscoveryFixture(profiles...)

	results, err := service.SearchUsers(context.Background(), "me", models.SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, results, service.Cfg.SearchLimit)
}
