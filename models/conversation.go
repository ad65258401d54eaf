package models

// Conversation is keyed by the sorted pair of participant IDs and carries
// a denormalized preview of the latest message.
type Conversation struct {
	ID            string   `dynamodbav:"id" json:"id"` // Partition key, PairID of the participants
	Participants  []string `dynamodbav:"participants" json:"participants"`
	LastMessage   string   `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt string   `dynamodbav:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
}

// Message is an append-only chat message within a conversation.
type Message struct {
	ID             string `dynamodbav:"id" json:"id"`
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	Text           string `dynamodbav:"text" json:"text"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// DynamoDB table names for messaging
const (
	ConversationsTable = "Conversations"
	MessagesTable      = "Messages"
)
