package services

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// ReportedUserIndex is the GSI for per-user report lookups.
const ReportedUserIndex = "reportedUserId-index"

// ReportService stores user reports and derives the Flagged projection
// from live pending counts. The projection is never persisted.
type ReportService struct {
	Dynamo *DynamoService
}

// Create files a report in pending status.
func (s *ReportService) Create(ctx context.Context, reporterID, reportedUserID, reason, details string) error {
	if reporterID == "" || reportedUserID == "" {
		return Invalid("reporter and reported user IDs are required")
	}
	return s.Dynamo.PutItem(ctx, models.ReportsTable, models.Report{
		ID:             uuid.NewString(),
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		Reason:         reason,
		Details:        details,
		Status:         models.ReportStatusPending,
		CreatedAt:      utils.NowISO(),
	})
}

// List returns every report, newest first, for the moderation view.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := s.Dynamo.ScanItems(ctx, models.ReportsTable, "", nil, nil, 0, &reports); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt > reports[j].CreatedAt
	})
	return reports, nil
}

// SetStatus resolves or dismisses a report. Admin-only at the route
// level.
func (s *ReportService) SetStatus(ctx context.Context, reportID, status string) error {
	return s.Dynamo.UpdateItem(ctx, models.ReportsTable, utils.StringKey("id", reportID),
		"SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
		map[string]string{"#status": "status"})
}

// PendingCounts returns the number of pending reports per reported user.
func (s *ReportService) PendingCounts(ctx context.Context) (map[string]int, error) {
	var reports []models.Report
	err := s.Dynamo.ScanItems(ctx, models.ReportsTable,
		"#status = :pending",
		map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: models.ReportStatusPending},
		},
		map[string]string{"#status": "status"}, 0, &reports)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, report := range reports {
		if report.ReportedUserID != "" {
			counts[report.ReportedUserID]++
		}
	}
	return counts, nil
}

// CountPendingFor returns the pending report count for a single user.
func (s *ReportService) CountPendingFor(ctx context.Context, userID string) (int, error) {
	var reports []models.Report
	err := s.Dynamo.QueryIndex(ctx, models.ReportsTable, ReportedUserIndex,
		"reportedUserId = :user", "#status = :pending",
		map[string]types.AttributeValue{
			":user":    &types.AttributeValueMemberS{Value: userID},
			":pending": &types.AttributeValueMemberS{Value: models.ReportStatusPending},
		},
		map[string]string{"#status": "status"}, 0, false, &reports)
	if err != nil {
		return 0, err
	}
	return len(reports), nil
}
