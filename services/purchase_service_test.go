package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanalmatech/ummahMatch/models"
)

func newPurchaseFixture(profiles ...models.UserProfile) (*PurchaseService, *fakePurchaseLedger, *fakeProfileStore, *fakeNotifier) {
	ledger := newFakePurchaseLedger()
	store := newFakeProfileStore(profiles...)
	notifier := &fakeNotifier{}
	service := &PurchaseService{
		Purchases:     ledger,
		Boosts:        store,
		Subscriptions: store,
		Notifier:      notifier,
	}
	return service, ledger, store, notifier
}

func TestCreatePurchaseIsPending(t *testing.T) {
	service, ledger, _, _ := newPurchaseFixture()

	created, err := service.Create(context.Background(), models.PurchaseRecord{
		UserID:   "u",
		ItemID:   "boost-5",
		ItemName: "5 Boosts",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PurchaseStatusPending, created.Status)
	assert.NotEmpty(t, created.CreatedAt)

	stored, err := ledger.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStatusPending, stored.Status)
}

func TestCreatePurchaseRequiresUserAndItem(t *testing.T) {
	service, _, _, _ := newPurchaseFixture()

	_, err := service.Create(context.Background(), models.PurchaseRecord{ItemID: "boost-1"})
	assert.True(t, IsInvalid(err))
}

func TestApproveBoostPackCreditsBalance(t *testing.T) {
	service, ledger, store, notifier := newPurchaseFixture(models.UserProfile{ID: "u", Boosts: 1})
	ctx := context.Background()

	created, err := service.Create(ctx, models.PurchaseRecord{UserID: "u", ItemID: "boost-5", ItemName: "5 Boosts"})
	require.NoError(t, err)

	require.NoError(t, service.Approve(ctx, created.ID))

	user, err := store.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 6, user.Boosts)

	stored, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStatusCompleted, stored.Status)

	require.Len(t, notifier.sentTo("u"), 1)
	assert.Equal(t, "Purchase Approved", notifier.sentTo("u")[0].Title)
}

func TestApproveSubscriptionSetsPlan(t *testing.T) {
	service, _, store, _ := newPurchaseFixture(models.UserProfile{ID: "u"})
	ctx := context.Background()

	created, err := service.Create(ctx, models.PurchaseRecord{UserID: "u", ItemID: "plan-gold", ItemName: models.SubscriptionGold})
	require.NoError(t, err)
	require.NoError(t, service.Approve(ctx, created.ID))

	user, err := store.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionGold, user.Subscription)
}

func TestApproveFailedGrantLeavesRecordPending(t *testing.T) {
	service, ledger, store, _ := newPurchaseFixture(models.UserProfile{ID: "u"})
	ctx := context.Background()

	created, err := service.Create(ctx, models.PurchaseRecord{UserID: "u", ItemID: "boost-5", ItemName: "5 Boosts"})
	require.NoError(t, err)

	store.grantErr = errors.New("store unavailable")
	require.Error(t, service.Approve(ctx, created.ID))

	stored, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStatusPending, stored.Status)

	// Retry after the store recovers.
	store.grantErr = nil
	require.NoError(t, service.Approve(ctx, created.ID))

	user, err := store.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 5, user.Boosts)
}

func TestApproveProcessedPurchaseDenied(t *testing.T) {
	service, _, store, _ := newPurchaseFixture(models.UserProfile{ID: "u"})
	ctx := context.Background()

	created, err := service.Create(ctx, models.PurchaseRecord{UserID: "u", ItemID: "boost-1", ItemName: "1 Boost"})
	require.NoError(t, err)
	require.NoError(t, service.Approve(ctx, created.ID))

	err = service.Approve(ctx, created.ID)
	assert.True(t, IsDenied(err))

	// The balance is credited exactly once.
	user, err := store.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 1, user.Boosts)
}

func TestRejectGrantsNothing(t *testing.T) {
	service, ledger, store, notifier := newPurchaseFixture(models.UserProfile{ID: "u"})
	ctx := context.Background()

	created, err := service.Create(ctx, models.PurchaseRecord{UserID: "u", ItemID: "boost-10", ItemName: "10 Boosts"})
	require.NoError(t, err)
	require.NoError(t, service.Reject(ctx, created.ID))

	stored, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStatusRejected, stored.Status)

	user, err := store.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 0, user.Boosts)

	require.Len(t, notifier.sentTo("u"), 1)
	assert.Equal(t, "Purchase Rejected", notifier.sentTo("u")[0].Title)
}

func TestBoostQuantityParsing(t *testing.T) {
	assert.Equal(t, 5, boostQuantity("boost-5"))
	assert.Equal(t, 10, boostQuantity("boost-10"))
	assert.Equal(t, 1, boostQuantity("boost-"))
	assert.Equal(t, 1, boostQuantity("boost-zero"))
}
