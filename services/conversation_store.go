package services

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/allanalmatech/ummahMatch/models"
)

// ConversationIndex orders messages within a conversation by creation
// time.
const ConversationIndex = "conversationId-index"

// ConversationStore is the DynamoDB-backed store for conversations and
// their messages.
type ConversationStore struct {
	Dynamo *DynamoService
}

// AppendMessage writes one immutable message document.
func (s *ConversationStore) AppendMessage(ctx context.Context, message models.Message) error {
	return s.Dynamo.PutItem(ctx, models.MessagesTable, message)
}

// UpsertPreview overwrites the conversation document with the latest
// denormalized message preview.
func (s *ConversationStore) UpsertPreview(ctx context.Context, conversation models.Conversation) error {
	return s.Dynamo.PutItem(ctx, models.ConversationsTable, conversation)
}

// ListMessages returns the messages of a conversation, oldest first.
func (s *ConversationStore) ListMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := s.Dynamo.QueryIndex(ctx, models.MessagesTable, ConversationIndex,
		"conversationId = :conversation", "",
		map[string]types.AttributeValue{
			":conversation": &types.AttributeValueMemberS{Value: conversationID},
		}, nil, int32(limit), false, &messages)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// ListForUser returns the conversations a user participates in, most
// recently active first.
func (s *ConversationStore) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := s.Dynamo.ScanItems(ctx, models.ConversationsTable,
		"contains(participants, :user)",
		map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0, &conversations)
	if err != nil {
		return nil, err
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt > conversations[j].LastMessageAt
	})
	return conversations, nil
}
