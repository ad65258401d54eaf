package models

// NotificationActor identifies the user a notification originated from.
type NotificationActor struct {
	ID        string `dynamodbav:"id" json:"id"`
	Name      string `dynamodbav:"name" json:"name"`
	AvatarURL string `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}

// Notification is delivered to a single recipient as a side effect of
// like/match/message/favorite events. Only the recipient mutates it, by
// marking it read.
type Notification struct {
	ID          string             `dynamodbav:"id" json:"id"`
	UserID      string             `dynamodbav:"userId" json:"userId"` // Recipient
	Type        string             `dynamodbav:"type" json:"type"`
	Title       string             `dynamodbav:"title" json:"title"`
	Description string             `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Link        string             `dynamodbav:"link,omitempty" json:"link,omitempty"`
	From        *NotificationActor `dynamodbav:"from,omitempty" json:"from,omitempty"`
	IsRead      bool               `dynamodbav:"isRead" json:"isRead"`
	CreatedAt   string             `dynamodbav:"createdAt" json:"createdAt"`
}

// NotificationData is the caller-supplied portion of a new notification.
type NotificationData struct {
	Type        string             `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Link        string             `json:"link,omitempty"`
	From        *NotificationActor `json:"from,omitempty"`
}

// NotificationsTable is the DynamoDB table name for notifications
const NotificationsTable = "Notifications"
