package services

import (
	"context"

	"github.com/allanalmatech/ummahMatch/config"
	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// DiscoveryService assembles the discovery feed and runs filtered
// search. Both surfaces exclude blocked users and users at or above the
// flag threshold; the feed additionally excludes everyone the viewer has
// already liked or disliked, so each card is seen at most once.
type DiscoveryService struct {
	Cfg      *config.Config
	Pool     ProfilePool
	Likes    LikeLedger
	Dislikes DislikeLedger
	Blocks   BlockLedger
	Flags    FlagCounter
}

// GetDiscoverFeed returns up to count candidate profiles for the viewer:
// actively boosted profiles first, then the newest accounts. A count of
// zero falls back to the configured feed size.
func (s *DiscoveryService) GetDiscoverFeed(ctx context.Context, viewerID string, count int) ([]models.UserProfile, error) {
	if count <= 0 {
		count = s.Cfg.FeedSize
	}

	excluded, err := s.feedExclusions(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	flagged, err := s.Flags.PendingCounts(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]models.UserProfile, 0, count)
	seen := make(map[string]bool)

	boosted, err := s.Pool.ListBoosted(ctx, utils.NowISO())
	if err != nil {
		return nil, err
	}
	for _, profile := range boosted {
		if len(feed) >= count {
			return feed, nil
		}
		if s.admissible(&profile, excluded, flagged) && !seen[profile.ID] {
			feed = append(feed, profile)
			seen[profile.ID] = true
		}
	}

	recent, err := s.Pool.ListRecent(ctx, s.Cfg.RegularPoolSize)
	if err != nil {
		return nil, err
	}
	for _, profile := range recent {
		if len(feed) >= count {
			break
		}
		if s.admissible(&profile, excluded, flagged) && !seen[profile.ID] {
			feed = append(feed, profile)
			seen[profile.ID] = true
		}
	}
	return feed, nil
}

// SearchUsers returns profiles matching the filters, capped at the
// search limit. Unlike the feed, previously liked and disliked users
// remain searchable.
func (s *DiscoveryService) SearchUsers(ctx context.Context, viewerID string, filters models.SearchFilters) ([]models.UserProfile, error) {
	excluded, err := s.searchExclusions(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	flagged, err := s.Flags.PendingCounts(ctx)
	if err != nil {
		return nil, err
	}

	var pool []models.UserProfile
	if filters.Gender != "" {
		pool, err = s.Pool.ListByGender(ctx, filters.Gender, s.Cfg.SearchPoolSize)
	} else {
		pool, err = s.Pool.ListRecent(ctx, s.Cfg.SearchPoolSize)
	}
	if err != nil {
		return nil, err
	}

	results := make([]models.UserProfile, 0)
	for _, profile := range pool {
		if len(results) >= s.Cfg.SearchLimit {
			break
		}
		if s.admissible(&profile, excluded, flagged) && filters.Matches(&profile) {
			results = append(results, profile)
		}
	}
	return results, nil
}

// admissible applies the checks shared by feed and search: search
// visibility, the exclusion set, and the flag threshold.
func (s *DiscoveryService) admissible(profile *models.UserProfile, excluded map[string]bool, flagged map[string]int) bool {
	if !profile.VisibleInSearch() {
		return false
	}
	if excluded[profile.ID] {
		return false
	}
	return flagged[profile.ID] < s.Cfg.FlagThreshold
}

// feedExclusions is the viewer's full exclusion set: self, everyone the
// viewer liked or disliked, and blocks in either direction.
func (s *DiscoveryService) feedExclusions(ctx context.Context, viewerID string) (map[string]bool, error) {
	excluded := map[string]bool{viewerID: true}

	liked, err := s.Likes.LikedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	disliked, err := s.Dislikes.DislikedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	blocked, err := s.Blocks.BlockedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	for _, id := range liked {
		excluded[id] = true
	}
	for _, id := range disliked {
		excluded[id] = true
	}
	for _, id := range blocked {
		excluded[id] = true
	}
	return excluded, nil
}

// searchExclusions excludes only self and blocks.
func (s *DiscoveryService) searchExclusions(ctx context.Context, viewerID string) (map[string]bool, error) {
	excluded := map[string]bool{viewerID: true}
	blocked, err := s.Blocks.BlockedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	for _, id := range blocked {
		excluded[id] = true
	}
	return excluded, nil
}
