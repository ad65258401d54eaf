package services

import (
	"context"

	"github.com/allanalmatech/ummahMatch/models"
)

// Interfaces the engine services consume. The DynamoDB-backed stores
// implement them in production; tests substitute in-memory fakes.

// ProfileReader fetches stored user profiles.
type ProfileReader interface {
	Get(ctx context.Context, id string) (*models.UserProfile, error)
	GetMany(ctx context.Context, ids []string) ([]models.UserProfile, error)
}

// ProfilePool supplies the candidate pools the visibility filter draws
// from.
type ProfilePool interface {
	ProfileReader
	ListBoosted(ctx context.Context, now string) ([]models.UserProfile, error)
	ListRecent(ctx context.Context, limit int) ([]models.UserProfile, error)
	ListByGender(ctx context.Context, gender string, limit int) ([]models.UserProfile, error)
}

// LikeLedger records and reads directed like edges.
type LikeLedger interface {
	Record(ctx context.Context, likerID, likedID string) error
	Exists(ctx context.Context, likerID, likedID string) (bool, error)
	LikedIDs(ctx context.Context, likerID string) ([]string, error)
	LikerIDs(ctx context.Context, likedID string) ([]string, error)
}

// DislikeLedger records and reads directed dislike edges.
type DislikeLedger interface {
	Record(ctx context.Context, dislikerID, dislikedID string) error
	DislikedIDs(ctx context.Context, dislikerID string) ([]string, error)
}

// BlockLedger records blocks and lists block relations in either
// direction. Recording a block also removes any match for the pair in the
// same write.
type BlockLedger interface {
	RecordWithMatchRemoval(ctx context.Context, blockerID, blockedID string) error
	BlockedIDs(ctx context.Context, userID string) ([]string, error)
}

// FavoriteLedger records, removes, and reads favorite edges.
type FavoriteLedger interface {
	Record(ctx context.Context, favoriterID, favoritedID string) error
	Remove(ctx context.Context, favoriterID, favoritedID string) error
	Exists(ctx context.Context, favoriterID, favoritedID string) (bool, error)
	FavoritedIDs(ctx context.Context, favoriterID string) ([]string, error)
}

// ViewLedger records profile views and lists recent viewers, deduplicated
// by viewer with the most recent view first.
type ViewLedger interface {
	Record(ctx context.Context, viewerID, viewedID string) error
	RecentViewerIDs(ctx context.Context, viewedID string, limit int) ([]string, error)
}

// MatchChecker answers whether a match exists for a pair.
type MatchChecker interface {
	Exists(ctx context.Context, userA, userB string) (bool, error)
}

// MatchRegistry materializes and reads derived match documents.
type MatchRegistry interface {
	MatchChecker
	CreateIfAbsent(ctx context.Context, match models.Match) (bool, error)
	PartnerIDs(ctx context.Context, userID string) ([]string, error)
}

// FlagCounter reports pending-report counts per reported user.
type FlagCounter interface {
	PendingCounts(ctx context.Context) (map[string]int, error)
}

// Notifier delivers a notification to a recipient.
type Notifier interface {
	Notify(ctx context.Context, userID string, data models.NotificationData) error
}

// BoostGranter credits boost balances.
type BoostGranter interface {
	AddBoosts(ctx context.Context, userID string, quantity int) error
}

// BoostActivator consumes one boost credit and opens the priority window.
type BoostActivator interface {
	ActivateBoost(ctx context.Context, userID, until string) error
}

// ProfileStore is the full read/write surface over stored profiles.
type ProfileStore interface {
	ProfileReader
	Put(ctx context.Context, profile *models.UserProfile) error
	SetFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	ListRecent(ctx context.Context, limit int) ([]models.UserProfile, error)
}

// SubscriptionSetter overwrites a user's subscription tier.
type SubscriptionSetter interface {
	SetSubscription(ctx context.Context, userID, plan string) error
}

// PurchaseLedger stores purchase records through the approval workflow.
type PurchaseLedger interface {
	Put(ctx context.Context, record models.PurchaseRecord) error
	Get(ctx context.Context, id string) (*models.PurchaseRecord, error)
	List(ctx context.Context) ([]models.PurchaseRecord, error)
	SetStatus(ctx context.Context, id, status string) error
}

// ConversationLedger stores conversations and their messages.
type ConversationLedger interface {
	AppendMessage(ctx context.Context, message models.Message) error
	UpsertPreview(ctx context.Context, conversation models.Conversation) error
	ListMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error)
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
}

// MessageGate decides whether a sender may message a receiver.
type MessageGate interface {
	CanMessage(ctx context.Context, sender, receiver *models.UserProfile) error
}

// FeedProvider supplies the discovery feed, reused as the AI candidate
// pool.
type FeedProvider interface {
	GetDiscoverFeed(ctx context.Context, viewerID string, count int) ([]models.UserProfile, error)
}
