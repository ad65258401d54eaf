package services

import (
	"context"

	"github.com/allanalmatech/ummahMatch/config"
	"github.com/allanalmatech/ummahMatch/models"
)

// Generator is the generation flow contract. AIClient implements it
// against the flow server; tests substitute a canned generator.
type Generator interface {
	SuggestMatches(ctx context.Context, in models.MatchmakingInput) (*models.MatchmakingOutput, error)
	Icebreakers(ctx context.Context, in models.IcebreakerInput) (*models.IcebreakerOutput, error)
	ProfileSuggestions(ctx context.Context, in models.ProfilePromptInput) (*models.ProfilePromptOutput, error)
	TransformPhoto(ctx context.Context, in models.PhotoTransformInput) (*models.PhotoTransformOutput, error)
}

// AIService fronts the generation flows, building candidate pools from
// the discovery feed and validating what comes back before it reaches
// clients.
type AIService struct {
	Cfg          *config.Config
	Profiles     ProfileReader
	Feed         FeedProvider
	Generator    Generator
	Entitlements *EntitlementService
}

// SuggestMatches ranks the user's discovery pool and returns the top
// candidates enriched with full profiles. Pools under three candidates
// skip the generator entirely and return no suggestions.
func (s *AIService) SuggestMatches(ctx context.Context, userID string) ([]models.AIMatch, error) {
	me, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	pool, err := s.Feed.GetDiscoverFeed(ctx, userID, s.Cfg.AIPoolSize)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.SimpleProfile, 0, len(pool))
	byID := make(map[string]models.UserProfile, len(pool))
	for _, profile := range pool {
		if profile.ID == userID {
			continue
		}
		candidates = append(candidates, simpleProfile(&profile))
		byID[profile.ID] = profile
	}
	if len(candidates) < 3 {
		return []models.AIMatch{}, nil
	}

	output, err := s.Generator.SuggestMatches(ctx, models.MatchmakingInput{
		CurrentUser: simpleProfile(me),
		Candidates:  candidates,
	})
	if err != nil {
		return nil, err
	}

	// The generator is untrusted: drop hallucinated IDs and
	// out-of-range scores, and never return more than three.
	matches := make([]models.AIMatch, 0, 3)
	for _, ranked := range output.Matches {
		if len(matches) >= 3 {
			break
		}
		profile, ok := byID[ranked.UserID]
		if !ok {
			continue
		}
		if ranked.Score < 0 || ranked.Score > 100 {
			continue
		}
		matches = append(matches, models.AIMatch{
			UserProfile: profile,
			Score:       ranked.Score,
			Reason:      ranked.Reason,
		})
	}
	return matches, nil
}

// Icebreakers generates conversation openers from both profiles.
func (s *AIService) Icebreakers(ctx context.Context, senderID, receiverID string) ([]string, error) {
	sender, err := s.Profiles.Get(ctx, senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.Profiles.Get(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	output, err := s.Generator.Icebreakers(ctx, models.IcebreakerInput{
		Sender:   simpleProfile(sender),
		Receiver: simpleProfile(receiver),
	})
	if err != nil {
		return nil, err
	}
	return output.Icebreakers, nil
}

// ProfileSuggestions generates description drafts from lifestyle
// attributes.
func (s *AIService) ProfileSuggestions(ctx context.Context, in models.ProfilePromptInput) ([]string, error) {
	output, err := s.Generator.ProfileSuggestions(ctx, in)
	if err != nil {
		return nil, err
	}
	return output.Suggestions, nil
}

// TransformPhoto runs a photo transformation for Platinum subscribers.
func (s *AIService) TransformPhoto(ctx context.Context, userID string, in models.PhotoTransformInput) (*models.PhotoTransformOutput, error) {
	user, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !s.Entitlements.CanUseAIPhotoStudio(user) {
		return nil, Denied("AI Photo Studio is available on the Platinum plan. Please upgrade to use it.")
	}
	if in.PhotoDataURI == "" {
		return nil, Invalid("photo data is required")
	}
	return s.Generator.TransformPhoto(ctx, in)
}

// simpleProfile reduces a profile to the fields the prompts consume.
func simpleProfile(u *models.UserProfile) models.SimpleProfile {
	return models.SimpleProfile{
		ID:                u.ID,
		Name:              u.Name,
		Age:               u.Age,
		Description:       u.Description,
		Interests:         u.Interests,
		Occupation:        u.Occupation,
		RelationshipGoals: u.RelationshipGoals,
		Subscription:      u.Tier(),
	}
}
