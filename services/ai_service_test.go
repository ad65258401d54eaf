package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanalmatech/ummahMatch/models"
)

type fixedFeed struct {
	profiles []models.UserProfile
}

func (f *fixedFeed) GetDiscoverFeed(_ context.Context, _ string, _ int) ([]models.UserProfile, error) {
	return f.profiles, nil
}

func newAIFixture(feed []models.UserProfile, profiles ...models.UserProfile) (*AIService, *fakeGenerator) {
	store := newFakeProfileStore(profiles...)
	generator := &fakeGenerator{}
	service := &AIService{
		Cfg:       testConfig(),
		Profiles:  store,
		Feed:      &fixedFeed{profiles: feed},
		Generator: generator,
		Entitlements: &EntitlementService{
			Cfg:      testConfig(),
			Profiles: store,
			Matches:  newFakeMatchRegistry(),
			Boosts:   store,
		},
	}
	return service, generator
}

func TestSuggestMatchesSmallPoolSkipsGenerator(t *testing.T) {
	service, generator := newAIFixture(
		[]models.UserProfile{{ID: "c1"}, {ID: "c2"}},
		models.UserProfile{ID: "me"},
	)

	matches, err := service.SuggestMatches(context.Background(), "me")
	require.NoError(t, err)

	assert.Empty(t, matches)
	assert.False(t, generator.generatorCalled)
}

func TestSuggestMatchesValidatesGeneratorOutput(t *testing.T) {
	feed := []models.UserProfile{
		{ID: "c1", Name: "One"},
		{ID: "c2", Name: "Two"},
		{ID: "c3", Name: "Three"},
		{ID: "c4", Name: "Four"},
		{ID: "c5", Name: "Five"},
	}
	service, generator := newAIFixture(feed, models.UserProfile{ID: "me"})
	generator.matchmakingOut = &models.MatchmakingOutput{
		Matches: []models.RankedMatch{
			{UserID: "c1", Score: 92, Reason: "shared goals"},
			{UserID: "ghost", Score: 88, Reason: "not in the pool"},
			{UserID: "c2", Score: 150, Reason: "score out of range"},
			{UserID: "c3", Score: 75, Reason: "similar interests"},
			{UserID: "c4", Score: 70, Reason: "same city"},
			{UserID: "c5", Score: 65, Reason: "would exceed the cap"},
		},
	}

	matches, err := service.SuggestMatches(context.Background(), "me")
	require.NoError(t, err)

	require.Len(t, matches, 3)
	assert.Equal(t, "c1", matches[0].ID)
	assert.Equal(t, 92, matches[0].Score)
	assert.Equal(t, "One", matches[0].Name)
	assert.Equal(t, "c3", matches[1].ID)
	assert.Equal(t, "c4", matches[2].ID)
}

func TestSuggestMatchesExcludesSelfFromCandidates(t *testing.T) {
	feed := []models.UserProfile{
		{ID: "me"},
		{ID: "c1"}, {ID: "c2"}, {ID: "c3"},
	}
	service, generator := newAIFixture(feed, models.UserProfile{ID: "me"})
	generator.matchmakingOut = &models.MatchmakingOutput{}

	_, err := service.SuggestMatches(context.Background(), "me")
	require.NoError(t, err)

	require.Len(t, generator.matchmakingIns, 1)
	for _, candidate := range generator.matchmakingIns[0].Candidates {
		assert.NotEqual(t, "me", candidate.ID)
	}
	assert.Len(t, generator.matchmakingIns[0].Candidates, 3)
}

func TestIcebreakers(t *testing.T) {
	service, generator := newAIFixture(nil,
		models.UserProfile{ID: "a", Name: "A"},
		models.UserProfile{ID: "b", Name: "B"},
	)
	generator.icebreakerOut = &models.IcebreakerOutput{Icebreakers: []string{"Hi!", "Salaam!"}}

	icebreakers, err := service.Icebreakers(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hi!", "Salaam!"}, icebreakers)
}

func TestTransformPhotoPlatinumOnly(t *testing.T) {
	service, generator := newAIFixture(nil,
		models.UserProfile{ID: "gold", Subscription: models.SubscriptionGold},
		models.UserProfile{ID: "platinum", Subscription: models.SubscriptionPlatinum},
	)
	generator.transformOut = &models.PhotoTransformOutput{GeneratedPhotoDataURI: "data:image/png;base64,xyz"}
	ctx := context.Background()

	_, err := service.TransformPhoto(ctx, "gold", models.PhotoTransformInput{PhotoDataURI: "data:image/png;base64,abc"})
	require.Error(t, err)
	assert.True(t, IsDenied(err))

	output, err := service.TransformPhoto(ctx, "platinum", models.PhotoTransformInput{PhotoDataURI: "data:image/png;base64,abc"})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,xyz", output.GeneratedPhotoDataURI)

	_, err = service.TransformPhoto(ctx, "platinum", models.PhotoTransformInput{})
	assert.True(t, IsInvalid(err))
}
