package models

// SimpleProfile is the reduced profile shape sent to the generation
// service. Only fields the prompts use are included.
type SimpleProfile struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name,omitempty"`
	Age               int    `json:"age,omitempty"`
	Description       string `json:"description,omitempty"`
	Interests         string `json:"interests,omitempty"`
	Occupation        string `json:"occupation,omitempty"`
	RelationshipGoals string `json:"relationshipGoals,omitempty"`
	Subscription      string `json:"subscription,omitempty"`
}

// IcebreakerInput asks for conversation starters between two users.
type IcebreakerInput struct {
	Sender   SimpleProfile `json:"sender"`
	Receiver SimpleProfile `json:"receiver"`
}

// IcebreakerOutput carries 3-4 short suggested openers.
type IcebreakerOutput struct {
	Icebreakers []string `json:"icebreakers"`
}

// ProfilePromptInput carries the lifestyle attributes the description
// suggestions are generated from.
type ProfilePromptInput struct {
	RelationshipGoals string `json:"relationshipGoals"`
	Lifestyle         string `json:"lifestyle"`
	Moods             string `json:"moods"`
	Interests         string `json:"interests"`
}

// ProfilePromptOutput carries 3 suggested profile descriptions.
type ProfilePromptOutput struct {
	Suggestions []string `json:"suggestions"`
}

// MatchmakingInput ranks candidates against the current user. The
// generation contract prefers Platinum-subscription candidates in both
// ranking and scoring.
type MatchmakingInput struct {
	CurrentUser SimpleProfile   `json:"currentUser"`
	Candidates  []SimpleProfile `json:"candidates"`
}

// RankedMatch is one entry of the compatibility ranking.
type RankedMatch struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"` // 0-100
	Reason string `json:"reason"`
}

// MatchmakingOutput carries the top-3 ranked candidates.
type MatchmakingOutput struct {
	Matches []RankedMatch `json:"matches"`
}

// PhotoTransformInput asks for an AI-enhanced version of a photo.
type PhotoTransformInput struct {
	PhotoDataURI string `json:"photoDataUri"`
	Style        string `json:"style,omitempty"`
}

// PhotoTransformOutput carries the generated photo.
type PhotoTransformOutput struct {
	GeneratedPhotoDataURI string `json:"generatedPhotoDataUri"`
}

// AIMatch is a ranked candidate enriched with the full profile for the
// client.
type AIMatch struct {
	UserProfile
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}
