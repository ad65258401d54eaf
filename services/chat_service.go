package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// ChatService sends and reads messages. Every send passes the
// entitlement gate; the conversation document carries a denormalized
// preview of the latest message for the inbox view.
type ChatService struct {
	Profiles      ProfileReader
	Gate          MessageGate
	Conversations ConversationLedger
	Notifier      Notifier
	Emitter       Emitter
}

// SendMessage validates, gates, and persists one message, then updates
// the conversation preview and notifies the receiver.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, Invalid("message text cannot be empty")
	}
	if senderID == "" || receiverID == "" {
		return nil, Invalid("sender and receiver IDs are required")
	}
	if senderID == receiverID {
		return nil, Invalid("users cannot message themselves")
	}

	sender, err := s.Profiles.Get(ctx, senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.Profiles.Get(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	if err := s.Gate.CanMessage(ctx, sender, receiver); err != nil {
		return nil, err
	}

	now := utils.NowISO()
	message := models.Message{
		ID:             uuid.NewString(),
		ConversationID: models.PairID(senderID, receiverID),
		SenderID:       senderID,
		Text:           text,
		CreatedAt:      now,
	}
	if err := s.Conversations.AppendMessage(ctx, message); err != nil {
		return nil, err
	}

	err = s.Conversations.UpsertPreview(ctx, models.Conversation{
		ID:            message.ConversationID,
		Participants:  models.SortedPair(senderID, receiverID),
		LastMessage:   text,
		LastMessageAt: now,
	})
	if err != nil {
		return nil, err
	}

	if s.Emitter != nil {
		s.Emitter.Emit(receiverID, "message", message)
	}
	if s.Notifier != nil {
		err := s.Notifier.Notify(ctx, receiverID, models.NotificationData{
			Type:        models.NotificationTypeMessage,
			Title:       "New Message",
			Description: sender.Name + " sent you a message.",
			Link:        "/messages/" + senderID,
			From:        &models.NotificationActor{ID: sender.ID, Name: sender.Name, AvatarURL: sender.ImageURL},
		})
		if err != nil {
			log.Printf("Failed to notify user %s about message: %v", receiverID, err)
		}
	}
	return &message, nil
}

// ListMessages returns the conversation between two users, oldest
// first.
func (s *ChatService) ListMessages(ctx context.Context, userA, userB string, limit int) ([]models.Message, error) {
	return s.Conversations.ListMessages(ctx, models.PairID(userA, userB), limit)
}

// ListConversations returns the user's inbox, most recently active
// first.
func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	return s.Conversations.ListForUser(ctx, userID)
}
