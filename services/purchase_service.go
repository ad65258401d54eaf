package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// PurchaseService runs the manual purchase approval workflow. Payments
// land as pending records; an admin approves or rejects each one, and
// only approval grants the purchased item.
type PurchaseService struct {
	Purchases     PurchaseLedger
	Boosts        BoostGranter
	Subscriptions SubscriptionSetter
	Notifier      Notifier
}

// Create files a pending purchase record after a payment callback.
// Nothing is granted yet.
func (s *PurchaseService) Create(ctx context.Context, record models.PurchaseRecord) (*models.PurchaseRecord, error) {
	if record.UserID == "" || record.ItemID == "" {
		return nil, Invalid("purchase user and item IDs are required")
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.Status = models.PurchaseStatusPending
	record.CreatedAt = utils.NowISO()

	if err := s.Purchases.Put(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Approve grants the purchased item and then marks the record
// completed. The grant runs first: if it fails, the record stays
// pending and the approval can be retried without double-granting a
// completed purchase.
func (s *PurchaseService) Approve(ctx context.Context, purchaseID string) error {
	record, err := s.Purchases.Get(ctx, purchaseID)
	if err != nil {
		return err
	}
	if record.Status != models.PurchaseStatusPending {
		return Denied("This purchase has already been processed.")
	}

	if err := s.grant(ctx, record); err != nil {
		return err
	}
	if err := s.Purchases.SetStatus(ctx, purchaseID, models.PurchaseStatusCompleted); err != nil {
		return err
	}

	s.notifyOutcome(ctx, record, "Purchase Approved",
		"Your purchase of "+record.ItemName+" has been approved.")
	return nil
}

// Reject marks the record rejected without granting anything.
func (s *PurchaseService) Reject(ctx context.Context, purchaseID string) error {
	record, err := s.Purchases.Get(ctx, purchaseID)
	if err != nil {
		return err
	}
	if record.Status != models.PurchaseStatusPending {
		return Denied("This purchase has already been processed.")
	}

	if err := s.Purchases.SetStatus(ctx, purchaseID, models.PurchaseStatusRejected); err != nil {
		return err
	}

	s.notifyOutcome(ctx, record, "Purchase Rejected",
		"Your purchase of "+record.ItemName+" was rejected. Please contact support.")
	return nil
}

// List returns all purchase records, newest first, for the admin review
// queue.
func (s *PurchaseService) List(ctx context.Context) ([]models.PurchaseRecord, error) {
	return s.Purchases.List(ctx)
}

// grant dispatches on the item ID: boost packs credit the boost
// balance, anything else is a subscription plan named by the item.
func (s *PurchaseService) grant(ctx context.Context, record *models.PurchaseRecord) error {
	if strings.HasPrefix(record.ItemID, models.BoostItemPrefix) {
		return s.Boosts.AddBoosts(ctx, record.UserID, boostQuantity(record.ItemID))
	}
	return s.Subscriptions.SetSubscription(ctx, record.UserID, record.ItemName)
}

// boostQuantity reads the pack size from item IDs like "boost-5".
// Unparseable IDs grant a single boost.
func boostQuantity(itemID string) int {
	raw := strings.TrimPrefix(itemID, models.BoostItemPrefix)
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}
	return 1
}

func (s *PurchaseService) notifyOutcome(ctx context.Context, record *models.PurchaseRecord, title, description string) {
	if s.Notifier == nil {
		return
	}
	err := s.Notifier.Notify(ctx, record.UserID, models.NotificationData{
		Type:        models.NotificationTypeAlert,
		Title:       title,
		Description: description,
	})
	if err != nil {
		log.Printf("Failed to notify user %s about purchase %s: %v", record.UserID, record.ID, err)
	}
}
