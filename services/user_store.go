package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// UserStore is the DynamoDB-backed store for user profiles.
type UserStore struct {
	Dynamo *DynamoService

	// IDBatchSize chunks multi-ID lookups to the store ceiling.
	IDBatchSize int
}

// GenderIndex is the GSI used for the coarse search filter.
const GenderIndex = "gender-index"

func (s *UserStore) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.Dynamo.GetItem(ctx, models.UserProfilesTable, utils.StringKey("id", id), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetMany fetches profiles by ID, chunking requests to the batch ceiling.
// Missing IDs are silently dropped.
func (s *UserStore) GetMany(ctx context.Context, ids []string) ([]models.UserProfile, error) {
	batch := s.IDBatchSize
	if batch <= 0 {
		batch = 30
	}

	var profiles []models.UserProfile
	for _, chunk := range utils.ChunkStrings(ids, batch) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, utils.StringKey("id", id))
		}

		var page []models.UserProfile
		if err := s.Dynamo.BatchGetItems(ctx, models.UserProfilesTable, keys, &page); err != nil {
			return nil, err
		}
		profiles = append(profiles, page...)
	}
	return profiles, nil
}

// Put writes a full profile document.
func (s *UserStore) Put(ctx context.Context, profile *models.UserProfile) error {
	return s.Dynamo.PutItem(ctx, models.UserProfilesTable, profile)
}

// SetFields merges individual fields into a profile document and
// refreshes updatedAt. Last write wins per field.
func (s *UserStore) SetFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	updateExpression := "SET"
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	i := 0
	for field, value := range fields {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal field '%s': %w", field, err)
		}
		if i > 0 {
			updateExpression += ","
		}
		updateExpression += fmt.Sprintf(" #f%d = :v%d", i, i)
		names[fmt.Sprintf("#f%d", i)] = field
		values[fmt.Sprintf(":v%d", i)] = av
		i++
	}

	updateExpression += ", #updatedAt = :updatedAt"
	names["#updatedAt"] = "updatedAt"
	values[":updatedAt"] = &types.AttributeValueMemberS{Value: utils.NowISO()}

	return s.Dynamo.UpdateItem(ctx, models.UserProfilesTable, utils.StringKey("id", id), updateExpression, values, names)
}

// SetSubscription overwrites the subscription tier.
func (s *UserStore) SetSubscription(ctx context.Context, userID, plan string) error {
	return s.SetFields(ctx, userID, map[string]interface{}{"subscription": plan})
}

// AddBoosts credits the boost balance with an atomic increment.
func (s *UserStore) AddBoosts(ctx context.Context, userID string, quantity int) error {
	return s.Dynamo.UpdateItem(ctx, models.UserProfilesTable, utils.StringKey("id", userID),
		"ADD boosts :quantity",
		map[string]types.AttributeValue{
			":quantity": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", quantity)},
		}, nil)
}

// ActivateBoost consumes one credit and opens the boost window.
func (s *UserStore) ActivateBoost(ctx context.Context, userID, until string) error {
	return s.Dynamo.UpdateItem(ctx, models.UserProfilesTable, utils.StringKey("id", userID),
		"ADD boosts :decrement SET boostActiveUntil = :until",
		map[string]types.AttributeValue{
			":decrement": &types.AttributeValueMemberN{Value: "-1"},
			":until":     &types.AttributeValueMemberS{Value: until},
		}, nil)
}

// Delete removes a profile document. Downstream cleanup of the user's
// ledger records is deferred to an external process.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.Dynamo.DeleteItem(ctx, models.UserProfilesTable, utils.StringKey("id", id))
}

// ListBoosted returns profiles with a boost window open past now, most
// recently boosted first.
func (s *UserStore) ListBoosted(ctx context.Context, now string) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := s.Dynamo.ScanItems(ctx, models.UserProfilesTable,
		"boostActiveUntil > :now",
		map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: now},
		}, nil, 0, &profiles)
	if err != nil {
		return nil, err
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].BoostActiveUntil > profiles[j].BoostActiveUntil
	})
	return profiles, nil
}

// ListRecent returns up to limit profiles by recency of account creation.
func (s *UserStore) ListRecent(ctx context.Context, limit int) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := s.Dynamo.ScanItems(ctx, models.UserProfilesTable, "", nil, nil, 0, &profiles); err != nil {
		return nil, err
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt > profiles[j].CreatedAt
	})
	if limit > 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles, nil
}

// ListByGender returns up to limit profiles of one gender, newest first.
func (s *UserStore) ListByGender(ctx context.Context, gender string, limit int) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := s.Dynamo.QueryIndex(ctx, models.UserProfilesTable, GenderIndex,
		"gender = :gender", "",
		map[string]types.AttributeValue{
			":gender": &types.AttributeValueMemberS{Value: gender},
		}, nil, int32(limit), true, &profiles)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
