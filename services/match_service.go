package services

import (
	"context"
	"log"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// MatchService resolves likes, dislikes and blocks, and materializes
// match documents when a like is reciprocated.
type MatchService struct {
	Likes    LikeLedger
	Dislikes DislikeLedger
	Blocks   BlockLedger
	Matches  MatchRegistry
	Profiles ProfileReader
	Notifier Notifier
}

// LikeUser records a directed like. When the liked user has already
// liked back, the pair's match document is created and both users are
// notified; the conditional write guarantees the match is created at
// most once even when both likes land concurrently. Returns whether the
// pair is now matched.
func (s *MatchService) LikeUser(ctx context.Context, likerID, likedID string) (bool, error) {
	if likerID == "" || likedID == "" {
		return false, Invalid("liker and liked user IDs are required")
	}
	if likerID == likedID {
		return false, Invalid("users cannot like themselves")
	}

	if err := s.Likes.Record(ctx, likerID, likedID); err != nil {
		return false, err
	}

	reciprocal, err := s.Likes.Exists(ctx, likedID, likerID)
	if err != nil {
		return false, err
	}
	if !reciprocal {
		s.notify(ctx, likedID, likerID, models.NotificationData{
			Type:  models.NotificationTypeLike,
			Title: "New Like!",
			Link:  "/users/" + likerID,
		})
		return false, nil
	}

	created, err := s.Matches.CreateIfAbsent(ctx, models.Match{
		PairID:    models.PairID(likerID, likedID),
		UserIDs:   models.SortedPair(likerID, likedID),
		CreatedAt: utils.NowISO(),
	})
	if err != nil {
		return false, err
	}
	if created {
		// Exactly one of the two concurrent likers wins the write, so
		// the pair is notified exactly once.
		s.notify(ctx, likerID, likedID, models.NotificationData{
			Type:  models.NotificationTypeMatch,
			Title: "It's a Match!",
			Link:  "/messages",
		})
		s.notify(ctx, likedID, likerID, models.NotificationData{
			Type:  models.NotificationTypeMatch,
			Title: "It's a Match!",
			Link:  "/messages",
		})
	}
	return true, nil
}

// DislikeUser records a directed dislike, removing the user from the
// liker's future discovery feeds.
func (s *MatchService) DislikeUser(ctx context.Context, dislikerID, dislikedID string) error {
	if dislikerID == "" || dislikedID == "" {
		return Invalid("disliker and disliked user IDs are required")
	}
	if dislikerID == dislikedID {
		return Invalid("users cannot dislike themselves")
	}
	return s.Dislikes.Record(ctx, dislikerID, dislikedID)
}

// BlockUser records a block and removes any match for the pair in the
// same write.
func (s *MatchService) BlockUser(ctx context.Context, blockerID, blockedID string) error {
	if blockerID == "" || blockedID == "" {
		return Invalid("blocker and blocked user IDs are required")
	}
	if blockerID == blockedID {
		return Invalid("users cannot block themselves")
	}
	return s.Blocks.RecordWithMatchRemoval(ctx, blockerID, blockedID)
}

// notify delivers a notification attributed to the actor. Delivery
// failures are logged but never fail the triggering action.
func (s *MatchService) notify(ctx context.Context, recipientID, actorID string, data models.NotificationData) {
	if s.Notifier == nil {
		return
	}
	if actor, err := s.Profiles.Get(ctx, actorID); err == nil {
		data.From = &models.NotificationActor{ID: actor.ID, Name: actor.Name, AvatarURL: actor.ImageURL}
		if data.Description == "" {
			switch data.Type {
			case models.NotificationTypeLike:
				data.Description = actor.Name + " liked your profile."
			case models.NotificationTypeMatch:
				data.Description = "You and " + actor.Name + " have liked each other."
			}
		}
	}
	if err := s.Notifier.Notify(ctx, recipientID, data); err != nil {
		log.Printf("Failed to notify user %s: %v", recipientID, err)
	}
}
