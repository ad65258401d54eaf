package models

// Like is an immutable liker -> liked edge. Duplicates are tolerated at
// write time and filtered by existence checks on read.
type Like struct {
	ID        string `dynamodbav:"id" json:"id"` // Partition key
	LikerID   string `dynamodbav:"likerId" json:"likerId"`
	LikedID   string `dynamodbav:"likedId" json:"likedId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Dislike is an immutable disliker -> disliked edge.
type Dislike struct {
	ID         string `dynamodbav:"id" json:"id"`
	DislikerID string `dynamodbav:"dislikerId" json:"dislikerId"`
	DislikedID string `dynamodbav:"dislikedId" json:"dislikedId"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// Block is a blocker -> blocked edge with a bidirectional effect: either
// side of a block hides both users from each other.
type Block struct {
	ID        string `dynamodbav:"id" json:"id"`
	BlockerID string `dynamodbav:"blockerId" json:"blockerId"`
	BlockedID string `dynamodbav:"blockedId" json:"blockedId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Favorite is a favoriter -> favorited edge, toggled freely and
// independent of likes and matches.
type Favorite struct {
	ID          string `dynamodbav:"id" json:"id"`
	FavoriterID string `dynamodbav:"favoriterId" json:"favoriterId"`
	FavoritedID string `dynamodbav:"favoritedId" json:"favoritedId"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// ProfileView records a viewer -> viewed event. Repeat views are recorded;
// listings deduplicate by viewer, most recent first.
type ProfileView struct {
	ID       string `dynamodbav:"id" json:"id"`
	ViewerID string `dynamodbav:"viewerId" json:"viewerId"`
	ViewedID string `dynamodbav:"viewedId" json:"viewedId"`
	ViewedAt string `dynamodbav:"viewedAt" json:"viewedAt"`
}

// DynamoDB table names for the interaction ledger
const (
	LikesTable        = "Likes"
	DislikesTable     = "Dislikes"
	BlocksTable       = "Blocks"
	FavoritesTable    = "Favorites"
	ProfileViewsTable = "ProfileViews"
)
