package services

import (
	"context"
	"errors"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// UserProfileService owns the profile lifecycle: creation, updates,
// settings, the photo verification workflow, and the admin account
// controls.
type UserProfileService struct {
	Users ProfileStore
	Gate  *EntitlementService
}

// Save creates or updates a profile. First save stamps createdAt and
// the account defaults; later saves preserve the account fields the
// client does not own (creation time, boost balance, moderation state).
func (s *UserProfileService) Save(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if profile.ID == "" {
		return nil, Invalid("profile ID is required")
	}

	now := utils.NowISO()
	existing, err := s.Users.Get(ctx, profile.ID)
	switch {
	case errors.Is(err, ErrItemNotFound):
		profile.CreatedAt = now
		if profile.Status == "" {
			profile.Status = models.UserStatusActive
		}
		if profile.Subscription == "" {
			profile.Subscription = models.SubscriptionFree
		}
		if profile.VerificationStatus == "" {
			profile.VerificationStatus = models.VerificationUnverified
		}
		if profile.Role == "" {
			profile.Role = models.RoleUser
		}
	case err != nil:
		return nil, err
	default:
		profile.CreatedAt = existing.CreatedAt
		profile.Boosts = existing.Boosts
		profile.BoostActiveUntil = existing.BoostActiveUntil
		profile.Status = existing.Status
		profile.Role = existing.Role
		profile.Subscription = existing.Subscription
		profile.VerificationStatus = existing.VerificationStatus
		profile.VerificationPhotoURL = existing.VerificationPhotoURL
	}
	profile.UpdatedAt = now

	if err := s.Users.Put(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get fetches a single profile without a visibility check. Internal
// and admin callers only; the viewer-facing read is GetForViewer.
func (s *UserProfileService) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.Users.Get(ctx, id)
}

// GetForViewer fetches a profile on behalf of a viewer, enforcing the
// subject's visibility preference. Owners always see themselves; other
// viewers are denied with the reason for the active preference.
func (s *UserProfileService) GetForViewer(ctx context.Context, viewerID, subjectID string) (*models.UserProfile, error) {
	if viewerID == "" {
		return nil, Invalid("viewer ID is required")
	}

	subject, err := s.Users.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if viewerID == subjectID {
		return subject, nil
	}

	viewer, err := s.Users.Get(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.Gate.CanViewFullProfile(ctx, viewer, subject)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, visibilityDenial(subject)
	}
	return subject, nil
}

// Delete removes the profile document.
func (s *UserProfileService) Delete(ctx context.Context, id string) error {
	return s.Users.Delete(ctx, id)
}

// List returns profiles for the admin view, newest accounts first.
func (s *UserProfileService) List(ctx context.Context, limit int) ([]models.UserProfile, error) {
	return s.Users.ListRecent(ctx, limit)
}

// UpdateSettings merges the privacy and notification preferences.
func (s *UserProfileService) UpdateSettings(ctx context.Context, userID string, privacy *models.PrivacySettings, notifications *models.NotificationSettings) error {
	fields := map[string]interface{}{}
	if privacy != nil {
		fields["privacy"] = privacy
	}
	if notifications != nil {
		fields["notifications"] = notifications
	}
	if len(fields) == 0 {
		return Invalid("no settings provided")
	}
	return s.Users.SetFields(ctx, userID, fields)
}

// RequestVerification files a photo verification request. A request
// already pending or approved cannot be filed again.
func (s *UserProfileService) RequestVerification(ctx context.Context, userID, photoURL string) error {
	if photoURL == "" {
		return Invalid("verification photo is required")
	}

	user, err := s.Users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.VerificationStatus == models.VerificationPending || user.VerificationStatus == models.VerificationVerified {
		return Denied("A verification request is already pending or approved.")
	}

	return s.Users.SetFields(ctx, userID, map[string]interface{}{
		"verificationStatus":   models.VerificationPending,
		"verificationPhotoUrl": photoURL,
	})
}

// ResolveVerification is the admin decision on a pending request. The
// submitted photo is discarded either way.
func (s *UserProfileService) ResolveVerification(ctx context.Context, userID, status string) error {
	if status != models.VerificationVerified && status != models.VerificationRejected {
		return Invalid("verification status must be verified or rejected")
	}
	return s.Users.SetFields(ctx, userID, map[string]interface{}{
		"verificationStatus":   status,
		"verificationPhotoUrl": "",
	})
}

// SetStatus suspends or reactivates an account.
func (s *UserProfileService) SetStatus(ctx context.Context, userID, status string) error {
	if status != models.UserStatusActive && status != models.UserStatusSuspended {
		return Invalid("status must be active or suspended")
	}
	return s.Users.SetFields(ctx, userID, map[string]interface{}{"status": status})
}

// SetSubscription is the admin override of a user's plan.
func (s *UserProfileService) SetSubscription(ctx context.Context, userID, plan string) error {
	return s.Users.SetFields(ctx, userID, map[string]interface{}{"subscription": plan})
}
