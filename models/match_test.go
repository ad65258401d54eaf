package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairIDIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairID("alice", "bob"), PairID("bob", "alice"))
	assert.Equal(t, "alice_bob", PairID("bob", "alice"))
}

func TestSortedPair(t *testing.T) {
	assert.Equal(t, []string{"alice", "bob"}, SortedPair("bob", "alice"))
	assert.Equal(t, []string{"alice", "bob"}, SortedPair("alice", "bob"))
}

func TestTierDefaultsToFree(t *testing.T) {
	u := &UserProfile{}
	assert.Equal(t, SubscriptionFree, u.Tier())

	u.Subscription = SubscriptionGold
	assert.Equal(t, SubscriptionGold, u.Tier())
}

func TestVisibleInSearch(t *testing.T) {
	assert.True(t, (&UserProfile{}).VisibleInSearch())
	assert.False(t, (&UserProfile{Status: UserStatusSuspended}).VisibleInSearch())
	assert.False(t, (&UserProfile{Privacy: &PrivacySettings{ShowInSearch: false}}).VisibleInSearch())
	assert.True(t, (&UserProfile{Privacy: &PrivacySettings{ShowInSearch: true}}).VisibleInSearch())

	// Suspension wins over an explicit opt-in.
	suspended := &UserProfile{
		Status:  UserStatusSuspended,
		Privacy: &PrivacySettings{ShowInSearch: true},
	}
	assert.False(t, suspended.VisibleInSearch())
}
