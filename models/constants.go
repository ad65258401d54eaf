package models

// Subscription tiers
const (
	SubscriptionFree     = "Free"
	SubscriptionPremium  = "Premium"
	SubscriptionGold     = "Gold"
	SubscriptionPlatinum = "Platinum"
)

// User account statuses
const (
	UserStatusActive    = "Active"
	UserStatusSuspended = "Suspended"
)

// Verification statuses
const (
	VerificationUnverified = "unverified"
	VerificationPending    = "pending"
	VerificationVerified   = "verified"
	VerificationRejected   = "rejected"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile visibility levels
const (
	VisibilityEveryone    = "everyone"
	VisibilitySubscribers = "subscribers"
	VisibilityMatches     = "matches"
)

// Notification types
const (
	NotificationTypeLike     = "like"
	NotificationTypeMatch    = "match"
	NotificationTypeMessage  = "message"
	NotificationTypeFavorite = "favorite"
	NotificationTypeAlert    = "alert"
)

// Purchase statuses
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusRejected  = "rejected"
)

// Report statuses
const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// BoostItemPrefix marks purchase item IDs that grant boost credits,
// e.g. "boost-5" adds five credits. Any other item ID is treated as a
// subscription plan purchase.
const BoostItemPrefix = "boost-"
