package services

import (
	"context"
	"fmt"
	"time"

	"github.com/allanalmatech/ummahMatch/config"
	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// EntitlementService answers the subscription and privacy gates: who may
// message whom, who sees full connection lists, and who may activate a
// boost. Denials carry the user-facing reason via EntitlementError.
type EntitlementService struct {
	Cfg      *config.Config
	Profiles ProfileReader
	Matches  MatchChecker
	Boosts   BoostActivator
}

// CanMessage reports whether the sender may message the receiver. Free
// senders are rejected first; the receiver's matches-only preference is
// checked second, so an upgrade prompt is never masked by a privacy
// denial.
func (s *EntitlementService) CanMessage(ctx context.Context, sender, receiver *models.UserProfile) error {
	if sender.Tier() == models.SubscriptionFree {
		return Denied("You need a Premium subscription to send messages. Please upgrade your plan.")
	}

	if receiver.Privacy != nil && receiver.Privacy.OnlyMatchesCanMessage {
		matched, err := s.Matches.Exists(ctx, sender.ID, receiver.ID)
		if err != nil {
			return err
		}
		if !matched {
			return Denied(fmt.Sprintf("%s only accepts messages from their matches.", receiver.Name))
		}
	}
	return nil
}

// CanViewFullProfile reports whether the viewer may see the subject's
// full profile under the subject's visibility preference. Owners always
// see themselves.
func (s *EntitlementService) CanViewFullProfile(ctx context.Context, viewer, subject *models.UserProfile) (bool, error) {
	if viewer.ID == subject.ID {
		return true, nil
	}
	if subject.Privacy == nil {
		return true, nil
	}

	switch subject.Privacy.ProfileVisibility {
	case models.VisibilitySubscribers:
		return viewer.Tier() != models.SubscriptionFree, nil
	case models.VisibilityMatches:
		return s.Matches.Exists(ctx, viewer.ID, subject.ID)
	default:
		return true, nil
	}
}

// visibilityDenial is the user-facing denial for a subject whose
// visibility preference excludes the viewer.
func visibilityDenial(subject *models.UserProfile) error {
	if subject.Privacy != nil && subject.Privacy.ProfileVisibility == models.VisibilitySubscribers {
		return Denied("This user only shares their full profile with subscribers. Upgrade to view their details.")
	}
	return Denied("This user only shares their profile with their matches. Like their profile for a chance to connect!")
}

// CanSeeAllConnections reports whether the user sees complete liker and
// viewer lists instead of the teaser preview.
func (s *EntitlementService) CanSeeAllConnections(user *models.UserProfile) bool {
	tier := user.Tier()
	return tier == models.SubscriptionGold || tier == models.SubscriptionPlatinum
}

// CanUseAIPhotoStudio reports whether the user may run photo
// transformations. Platinum only.
func (s *EntitlementService) CanUseAIPhotoStudio(user *models.UserProfile) bool {
	return user.Tier() == models.SubscriptionPlatinum
}

// GatePreview truncates a connection list for users without the full
// view, returning the visible slice and the count withheld.
func (s *EntitlementService) GatePreview(viewer *models.UserProfile, profiles []models.UserProfile) ([]models.UserProfile, int) {
	if s.CanSeeAllConnections(viewer) {
		return profiles, 0
	}
	limit := s.Cfg.PreviewLimit
	if len(profiles) <= limit {
		return profiles, 0
	}
	return profiles[:limit], len(profiles) - limit
}

// UseBoost consumes one boost credit and opens a priority-placement
// window. The zero-balance check comes before the active-window check,
// so a user with no credits is told to buy more even while a window is
// open. Returns the window expiry.
func (s *EntitlementService) UseBoost(ctx context.Context, userID string) (string, error) {
	user, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.Boosts <= 0 {
		return "", Denied("You have no boosts left.")
	}

	now := utils.NowISO()
	if user.BoostActiveUntil > now {
		return "", Denied("Your profile boost is already active.")
	}

	until := time.Now().UTC().Add(s.Cfg.BoostDuration).Format(time.RFC3339)
	if err := s.Boosts.ActivateBoost(ctx, userID, until); err != nil {
		return "", err
	}
	return until, nil
}
