package services

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// MatchStore is the DynamoDB-backed store for derived match documents,
// keyed by the sorted-pair ID.
type MatchStore struct {
	Dynamo *DynamoService
}

// CreateIfAbsent writes the match only when no document exists for the
// pair yet. The conditional put on the deterministic key makes creation
// exactly-once even when both like directions resolve concurrently.
func (s *MatchStore) CreateIfAbsent(ctx context.Context, match models.Match) (bool, error) {
	err := s.Dynamo.PutItemConditional(ctx, models.MatchesTable, match, "attribute_not_exists(pairId)")
	if errors.Is(err, ErrConditionFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether a match document exists for the pair.
func (s *MatchStore) Exists(ctx context.Context, userA, userB string) (bool, error) {
	var match models.Match
	err := s.Dynamo.GetItem(ctx, models.MatchesTable, utils.StringKey("pairId", models.PairID(userA, userB)), &match)
	if errors.Is(err, ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PartnerIDs returns the other side of every match the user belongs to.
func (s *MatchStore) PartnerIDs(ctx context.Context, userID string) ([]string, error) {
	var matches []models.Match
	err := s.Dynamo.ScanItems(ctx, models.MatchesTable,
		"contains(userIds, :user)",
		map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0, &matches)
	if err != nil {
		return nil, err
	}

	var partners []string
	for _, match := range matches {
		for _, id := range match.UserIDs {
			if id != userID {
				partners = appendUnique(partners, id)
			}
		}
	}
	return partners, nil
}
