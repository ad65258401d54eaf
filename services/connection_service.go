package services

import (
	"context"
	"log"

	"github.com/allanalmatech/ummahMatch/models"
)

// ConnectionPage is a connection list plus the count withheld behind
// the subscription gate.
type ConnectionPage struct {
	Profiles    []models.UserProfile `json:"profiles"`
	HiddenCount int                  `json:"hiddenCount"`
}

// ConnectionService assembles the likes/viewers/favorites/matches
// surfaces. Incoming lists (who liked me, who viewed me) are teaser
// gated for Free and Premium users; outgoing lists are always complete.
type ConnectionService struct {
	Profiles     ProfileReader
	Likes        LikeLedger
	Favorites    FavoriteLedger
	Views        ViewLedger
	Matches      MatchRegistry
	Blocks       BlockLedger
	Entitlements *EntitlementService
	Notifier     Notifier
}

// UsersILiked returns everyone the user has liked.
func (s *ConnectionService) UsersILiked(ctx context.Context, userID string) ([]models.UserProfile, error) {
	ids, err := s.Likes.LikedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids, err = s.withoutBlocked(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	return s.profilesInOrder(ctx, ids)
}

// UsersWhoLikedMe returns the user's incoming likes, gated to the
// preview size for users without the full connections view.
func (s *ConnectionService) UsersWhoLikedMe(ctx context.Context, userID string) (*ConnectionPage, error) {
	ids, err := s.Likes.LikerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.gatedPage(ctx, userID, ids)
}

// RecentViewers returns who viewed the user's profile, most recent
// first, gated like incoming likes.
func (s *ConnectionService) RecentViewers(ctx context.Context, userID string, limit int) (*ConnectionPage, error) {
	ids, err := s.Views.RecentViewerIDs(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return s.gatedPage(ctx, userID, ids)
}

// FavoriteProfiles returns the user's favorites list.
func (s *ConnectionService) FavoriteProfiles(ctx context.Context, userID string) ([]models.UserProfile, error) {
	ids, err := s.Favorites.FavoritedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids, err = s.withoutBlocked(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	return s.profilesInOrder(ctx, ids)
}

// ToggleFavorite adds or removes a favorite edge and reports the
// resulting state. Adding notifies the favorited user.
func (s *ConnectionService) ToggleFavorite(ctx context.Context, userID, targetID string) (bool, error) {
	if userID == "" || targetID == "" {
		return false, Invalid("user and target IDs are required")
	}
	if userID == targetID {
		return false, Invalid("users cannot favorite themselves")
	}

	exists, err := s.Favorites.Exists(ctx, userID, targetID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.Favorites.Remove(ctx, userID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	actor, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	target, err := s.Profiles.Get(ctx, targetID)
	if err != nil {
		return false, err
	}
	allowed, err := s.Entitlements.CanViewFullProfile(ctx, actor, target)
	if err != nil {
		return false, err
	}
	if !allowed {
		return false, visibilityDenial(target)
	}

	if err := s.Favorites.Record(ctx, userID, targetID); err != nil {
		return false, err
	}
	if s.Notifier != nil {
		data := models.NotificationData{
			Type:        models.NotificationTypeFavorite,
			Title:       "You have a new admirer!",
			Description: actor.Name + " added you to their favorites.",
			Link:        "/users/" + userID,
			From:        &models.NotificationActor{ID: actor.ID, Name: actor.Name, AvatarURL: actor.ImageURL},
		}
		if err := s.Notifier.Notify(ctx, targetID, data); err != nil {
			log.Printf("Failed to notify user %s about favorite: %v", targetID, err)
		}
	}
	return true, nil
}

// MatchedProfiles returns the user's current match partners.
func (s *ConnectionService) MatchedProfiles(ctx context.Context, userID string) ([]models.UserProfile, error) {
	ids, err := s.Matches.PartnerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profilesInOrder(ctx, ids)
}

// RecordView logs a profile view. Self views are dropped, and views of
// profiles the viewer cannot see under the subject's visibility
// preference are not recorded.
func (s *ConnectionService) RecordView(ctx context.Context, viewerID, viewedID string) error {
	if viewerID == "" || viewedID == "" {
		return Invalid("viewer and viewed IDs are required")
	}
	if viewerID == viewedID {
		return nil
	}

	viewer, err := s.Profiles.Get(ctx, viewerID)
	if err != nil {
		return err
	}
	viewed, err := s.Profiles.Get(ctx, viewedID)
	if err != nil {
		return err
	}
	allowed, err := s.Entitlements.CanViewFullProfile(ctx, viewer, viewed)
	if err != nil {
		return err
	}
	if !allowed {
		return nil
	}
	return s.Views.Record(ctx, viewerID, viewedID)
}

func (s *ConnectionService) gatedPage(ctx context.Context, userID string, ids []string) (*ConnectionPage, error) {
	ids, err := s.withoutBlocked(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profilesInOrder(ctx, ids)
	if err != nil {
		return nil, err
	}

	viewer, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	visible, hidden := s.Entitlements.GatePreview(viewer, profiles)
	return &ConnectionPage{Profiles: visible, HiddenCount: hidden}, nil
}

// withoutBlocked drops IDs blocked in either direction relative to the
// user. Match lists skip this: blocking already removes the match.
func (s *ConnectionService) withoutBlocked(ctx context.Context, userID string, ids []string) ([]string, error) {
	blocked, err := s.Blocks.BlockedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(blocked) == 0 {
		return ids, nil
	}

	blockedSet := make(map[string]bool, len(blocked))
	for _, id := range blocked {
		blockedSet[id] = true
	}
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if !blockedSet[id] {
			kept = append(kept, id)
		}
	}
	return kept, nil
}

// profilesInOrder batch-fetches profiles and restores the ledger's
// ordering, dropping IDs whose profiles no longer exist.
func (s *ConnectionService) profilesInOrder(ctx context.Context, ids []string) ([]models.UserProfile, error) {
	if len(ids) == 0 {
		return []models.UserProfile{}, nil
	}

	fetched, err := s.Profiles.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.UserProfile, len(fetched))
	for _, profile := range fetched {
		byID[profile.ID] = profile
	}

	ordered := make([]models.UserProfile, 0, len(ids))
	for _, id := range ids {
		if profile, ok := byID[id]; ok {
			ordered = append(ordered, profile)
		}
	}
	return ordered, nil
}
