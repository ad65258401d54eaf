package models

// PrivacySettings controls who can find, view, and message a user.
type PrivacySettings struct {
	ShowInSearch          bool   `dynamodbav:"showInSearch" json:"showInSearch"`
	OnlyMatchesCanMessage bool   `dynamodbav:"onlyMatchesCanMessage" json:"onlyMatchesCanMessage"`
	ProfileVisibility     string `dynamodbav:"profileVisibility,omitempty" json:"profileVisibility,omitempty"`
}

// NotificationSettings holds per-channel opt-ins.
type NotificationSettings struct {
	Email bool `dynamodbav:"email" json:"email"`
	Push  bool `dynamodbav:"push" json:"push"`
	SMS   bool `dynamodbav:"sms" json:"sms"`
}

// UserProfile defines the structure for user profiles
type UserProfile struct {
	ID                   string                `dynamodbav:"id" json:"id"` // Partition key
	Name                 string                `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Email                string                `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Age                  int                   `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Gender               string                `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Location             string                `dynamodbav:"location,omitempty" json:"location,omitempty"`
	City                 string                `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Country              string                `dynamodbav:"country,omitempty" json:"country,omitempty"`
	ImageURL             string                `dynamodbav:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Photos               []string              `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	Occupation           string                `dynamodbav:"occupation,omitempty" json:"occupation,omitempty"`
	Nationality          string                `dynamodbav:"nationality,omitempty" json:"nationality,omitempty"`
	Tribe                string                `dynamodbav:"tribe,omitempty" json:"tribe,omitempty"`
	Religion             string                `dynamodbav:"religion,omitempty" json:"religion,omitempty"`
	Denomination         string                `dynamodbav:"denomination,omitempty" json:"denomination,omitempty"`
	HomeStatus           string                `dynamodbav:"homeStatus,omitempty" json:"homeStatus,omitempty"`
	Children             int                   `dynamodbav:"children,omitempty" json:"children,omitempty"`
	Education            string                `dynamodbav:"education,omitempty" json:"education,omitempty"`
	Languages            string                `dynamodbav:"languages,omitempty" json:"languages,omitempty"`
	Height               int                   `dynamodbav:"height,omitempty" json:"height,omitempty"`
	Weight               int                   `dynamodbav:"weight,omitempty" json:"weight,omitempty"`
	Drinking             string                `dynamodbav:"drinking,omitempty" json:"drinking,omitempty"`
	Smoking              string                `dynamodbav:"smoking,omitempty" json:"smoking,omitempty"`
	MaritalStatus        string                `dynamodbav:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	AcceptsPolygamy      string                `dynamodbav:"acceptsPolygamy,omitempty" json:"acceptsPolygamy,omitempty"`
	Lifestyle            string                `dynamodbav:"lifestyle,omitempty" json:"lifestyle,omitempty"`
	RelationshipGoals    string                `dynamodbav:"relationshipGoals,omitempty" json:"relationshipGoals,omitempty"`
	Moods                string                `dynamodbav:"moods,omitempty" json:"moods,omitempty"`
	Appearance           string                `dynamodbav:"appearance,omitempty" json:"appearance,omitempty"`
	Interests            string                `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Description          string                `dynamodbav:"description,omitempty" json:"description,omitempty"`
	VerificationStatus   string                `dynamodbav:"verificationStatus,omitempty" json:"verificationStatus,omitempty"`
	VerificationPhotoURL string                `dynamodbav:"verificationPhotoUrl,omitempty" json:"verificationPhotoUrl,omitempty"`
	Role                 string                `dynamodbav:"role,omitempty" json:"role,omitempty"`
	Status               string                `dynamodbav:"status,omitempty" json:"status,omitempty"`
	Subscription         string                `dynamodbav:"subscription,omitempty" json:"subscription,omitempty"`
	Boosts               int                   `dynamodbav:"boosts" json:"boosts"`
	BoostActiveUntil     string                `dynamodbav:"boostActiveUntil,omitempty" json:"boostActiveUntil,omitempty"`
	Notifications        *NotificationSettings `dynamodbav:"notifications,omitempty" json:"notifications,omitempty"`
	Privacy              *PrivacySettings      `dynamodbav:"privacy,omitempty" json:"privacy,omitempty"`
	CreatedAt            string                `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt            string                `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Tier returns the subscription plan, defaulting to Free when unset.
func (u *UserProfile) Tier() string {
	if u.Subscription == "" {
		return SubscriptionFree
	}
	return u.Subscription
}

// VisibleInSearch reports whether the profile may appear in discovery and search.
// Profiles without explicit privacy settings are visible.
func (u *UserProfile) VisibleInSearch() bool {
	if u.Status == UserStatusSuspended {
		return false
	}
	if u.Privacy == nil {
		return true
	}
	return u.Privacy.ShowInSearch
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "Users"
