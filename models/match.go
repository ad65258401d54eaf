package models

import (
	"sort"
	"strings"
)

// Match is the derived record of mutual interest between two users. It is
// keyed by the sorted pair of user IDs so creation is naturally idempotent:
// both like directions resolve to the same document.
type Match struct {
	PairID    string   `dynamodbav:"pairId" json:"pairId"` // Partition key
	UserIDs   []string `dynamodbav:"userIds" json:"userIds"`
	CreatedAt string   `dynamodbav:"createdAt" json:"createdAt"`
}

// PairID returns the deterministic identifier for a user pair,
// independent of argument order.
func PairID(userA, userB string) string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// SortedPair returns the two IDs in their canonical order.
func SortedPair(userA, userB string) []string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return ids
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
