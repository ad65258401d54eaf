package services

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// PurchaseStore is the DynamoDB-backed store for purchase records.
type PurchaseStore struct {
	Dynamo *DynamoService
}

func (s *PurchaseStore) Put(ctx context.Context, record models.PurchaseRecord) error {
	return s.Dynamo.PutItem(ctx, models.PurchasesTable, record)
}

func (s *PurchaseStore) Get(ctx context.Context, id string) (*models.PurchaseRecord, error) {
	var record models.PurchaseRecord
	if err := s.Dynamo.GetItem(ctx, models.PurchasesTable, utils.StringKey("id", id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns every purchase record, newest first, for the admin sales
// view.
func (s *PurchaseStore) List(ctx context.Context) ([]models.PurchaseRecord, error) {
	var records []models.PurchaseRecord
	if err := s.Dynamo.ScanItems(ctx, models.PurchasesTable, "", nil, nil, 0, &records); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records, nil
}

func (s *PurchaseStore) SetStatus(ctx context.Context, id, status string) error {
	return s.Dynamo.UpdateItem(ctx, models.PurchasesTable, utils.StringKey("id", id),
		"SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
		map[string]string{"#status": "status"})
}
