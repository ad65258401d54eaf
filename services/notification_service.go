package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// NotificationUserIndex is the GSI for per-recipient notification
// lookups.
const NotificationUserIndex = "userId-index"

// Emitter pushes a realtime event to a connected user, if any. A nil
// emitter is valid; persistence never depends on delivery.
type Emitter interface {
	Emit(userID, event string, payload interface{})
}

// NotificationService persists notifications and pushes them to
// connected clients.
type NotificationService struct {
	Dynamo  *DynamoService
	Emitter Emitter
}

// Notify stores a notification for the recipient and emits it over the
// socket when the recipient is connected.
func (s *NotificationService) Notify(ctx context.Context, userID string, data models.NotificationData) error {
	if userID == "" {
		return Invalid("notification recipient is required")
	}

	notification := models.Notification{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        data.Type,
		Title:       data.Title,
		Description: data.Description,
		Link:        data.Link,
		From:        data.From,
		IsRead:      false,
		CreatedAt:   utils.NowISO(),
	}
	if err := s.Dynamo.PutItem(ctx, models.NotificationsTable, notification); err != nil {
		return err
	}

	if s.Emitter != nil {
		s.Emitter.Emit(userID, "notification", notification)
	}
	return nil
}

// ListForUser returns the recipient's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 30
	}

	var notifications []models.Notification
	err := s.Dynamo.QueryIndex(ctx, models.NotificationsTable, NotificationUserIndex,
		"userId = :user", "",
		map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		}, nil, int32(limit), true, &notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.Dynamo.UpdateItem(ctx, models.NotificationsTable, utils.StringKey("id", notificationID),
		"SET isRead = :read",
		map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		}, nil)
}
