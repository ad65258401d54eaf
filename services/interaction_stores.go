package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/utils"
)

// The interaction ledger: append-only like/dislike/block/favorite/view
// records. No uniqueness is enforced at write time; duplicates are
// tolerated and filtered by existence checks on read.

// GSI names for the ledger tables
const (
	LikerIndex     = "likerId-index"
	LikedIndex     = "likedId-index"
	DislikerIndex  = "dislikerId-index"
	BlockerIndex   = "blockerId-index"
	BlockedIndex   = "blockedId-index"
	FavoriterIndex = "favoriterId-index"
	ViewedIndex    = "viewedId-index"
)

// LikeStore is the DynamoDB-backed like ledger.
type LikeStore struct {
	Dynamo *DynamoService
}

func (s *LikeStore) Record(ctx context.Context, likerID, likedID string) error {
	return s.Dynamo.PutItem(ctx, models.LikesTable, models.Like{
		ID:        uuid.NewString(),
		LikerID:   likerID,
		LikedID:   likedID,
		CreatedAt: utils.NowISO(),
	})
}

func (s *LikeStore) Exists(ctx context.Context, likerID, likedID string) (bool, error) {
	var likes []models.Like
	err := s.Dynamo.QueryIndex(ctx, models.LikesTable, LikerIndex,
		"likerId = :liker", "likedId = :liked",
		map[string]types.AttributeValue{
			":liker": &types.AttributeValueMemberS{Value: likerID},
			":liked": &types.AttributeValueMemberS{Value: likedID},
		}, nil, 0, false, &likes)
	if err != nil {
		return false, err
	}
	return len(likes) > 0, nil
}

// LikedIDs returns the IDs a user has liked, deduplicated.
func (s *LikeStore) LikedIDs(ctx context.Context, likerID string) ([]string, error) {
	var likes []models.Like
	err := s.Dynamo.QueryIndex(ctx, models.LikesTable, LikerIndex,
		"likerId = :liker", "",
		map[string]types.AttributeValue{
			":liker": &types.AttributeValueMemberS{Value: likerID},
		}, nil, 0, false, &likes)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(likes))
	for _, like := range likes {
		ids = appendUnique(ids, like.LikedID)
	}
	return ids, nil
}

// LikerIDs returns the IDs of users who liked the given user, in
// insertion order, deduplicated.
func (s *LikeStore) LikerIDs(ctx context.Context, likedID string) ([]string, error) {
	var likes []models.Like
	err := s.Dynamo.QueryIndex(ctx, models.LikesTable, LikedIndex,
		"likedId = :liked", "",
		map[string]types.AttributeValue{
			":liked": &types.AttributeValueMemberS{Value: likedID},
		}, nil, 0, false, &likes)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(likes))
	for _, like := range likes {
		ids = appendUnique(ids, like.LikerID)
	}
	return ids, nil
}

// DislikeStore is the DynamoDB-backed dislike ledger.
type DislikeStore struct {
	Dynamo *DynamoService
}

func (s *DislikeStore) Record(ctx context.Context, dislikerID, dislikedID string) error {
	return s.Dynamo.PutItem(ctx, models.DislikesTable, models.Dislike{
		ID:         uuid.NewString(),
		DislikerID: dislikerID,
		DislikedID: dislikedID,
		CreatedAt:  utils.NowISO(),
	})
}

func (s *DislikeStore) DislikedIDs(ctx context.Context, dislikerID string) ([]string, error) {
	var dislikes []models.Dislike
	err := s.Dynamo.QueryIndex(ctx, models.DislikesTable, DislikerIndex,
		"dislikerId = :disliker", "",
		map[string]types.AttributeValue{
			":disliker": &types.AttributeValueMemberS{Value: dislikerID},
		}, nil, 0, false, &dislikes)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(dislikes))
	for _, dislike := range dislikes {
		ids = appendUnique(ids, dislike.DislikedID)
	}
	return ids, nil
}

// BlockStore is the DynamoDB-backed block ledger.
type BlockStore struct {
	Dynamo *DynamoService
}

// RecordWithMatchRemoval writes the block record and deletes any match
// for the pair in one transactional write, so the two effects appear
// atomic.
func (s *BlockStore) RecordWithMatchRemoval(ctx context.Context, blockerID, blockedID string) error {
	block := models.Block{
		ID:        uuid.NewString(),
		BlockerID: blockerID,
		BlockedID: blockedID,
		CreatedAt: utils.NowISO(),
	}
	item, err := attributevalue.MarshalMap(block)
	if err != nil {
		return err
	}

	blocksTable := models.BlocksTable
	matchesTable := models.MatchesTable
	return s.Dynamo.TransactWriteItems(ctx, []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName: &blocksTable,
				Item:      item,
			},
		},
		{
			Delete: &types.Delete{
				TableName: &matchesTable,
				Key:       utils.StringKey("pairId", models.PairID(blockerID, blockedID)),
			},
		},
	})
}

// BlockedIDs returns every ID blocked in either direction relative to the
// given user.
func (s *BlockStore) BlockedIDs(ctx context.Context, userID string) ([]string, error) {
	var iBlocked []models.Block
	err := s.Dynamo.QueryIndex(ctx, models.BlocksTable, BlockerIndex,
		"blockerId = :user", "",
		map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0, false, &iBlocked)
	if err != nil {
		return nil, err
	}

	var blockedMe []models.Block
	err = s.Dynamo.QueryIndex(ctx, models.BlocksTable, BlockedIndex,
		"blockedId = :user", "",
		map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0, false, &blockedMe)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, block := range iBlocked {
		ids = appendUnique(ids, block.BlockedID)
	}
	for _, block := range blockedMe {
		ids = appendUnique(ids, block.BlockerID)
	}
	return ids, nil
}

// FavoriteStore is the DynamoDB-backed favorite ledger.
type FavoriteStore struct {
	Dynamo *DynamoService
}

func (s *FavoriteStore) Record(ctx context.Context, favoriterID, favoritedID string) error {
	return s.Dynamo.PutItem(ctx, models.FavoritesTable, models.Favorite{
		ID:          uuid.NewString(),
		FavoriterID: favoriterID,
		FavoritedID: favoritedID,
		CreatedAt:   utils.NowISO(),
	})
}

// Remove deletes the favorite edge, if present.
func (s *FavoriteStore) Remove(ctx context.Context, favoriterID, favoritedID string) error {
	favorites, err := s.query(ctx, favoriterID, favoritedID)
	if err != nil {
		return err
	}
	for _, favorite := range favorites {
		if err := s.Dynamo.DeleteItem(ctx, models.FavoritesTable, utils.StringKey("id", favorite.ID)); err != nil {
			return err
		}
	}
	return nil
}

func (s *FavoriteStore) Exists(ctx context.Context, favoriterID, favoritedID string) (bool, error) {
	favorites, err := s.query(ctx, favoriterID, favoritedID)
	if err != nil {
		return false, err
	}
	return len(favorites) > 0, nil
}

func (s *FavoriteStore) FavoritedIDs(ctx context.Context, favoriterID string) ([]string, error) {
	var favorites []models.Favorite
	err := s.Dynamo.QueryIndex(ctx, models.FavoritesTable, FavoriterIndex,
		"favoriterId = :favoriter", "",
		map[string]types.AttributeValue{
			":favoriter": &types.AttributeValueMemberS{Value: favoriterID},
		}, nil, 0, false, &favorites)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		ids = appendUnique(ids, favorite.FavoritedID)
	}
	return ids, nil
}

func (s *FavoriteStore) query(ctx context.Context, favoriterID, favoritedID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.Dynamo.QueryIndex(ctx, models.FavoritesTable, FavoriterIndex,
		"favoriterId = :favoriter", "favoritedId = :favorited",
		map[string]types.AttributeValue{
			":favoriter": &types.AttributeValueMemberS{Value: favoriterID},
			":favorited": &types.AttributeValueMemberS{Value: favoritedID},
		}, nil, 0, false, &favorites)
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// ViewStore is the DynamoDB-backed profile view ledger.
type ViewStore struct {
	Dynamo *DynamoService
}

func (s *ViewStore) Record(ctx context.Context, viewerID, viewedID string) error {
	return s.Dynamo.PutItem(ctx, models.ProfileViewsTable, models.ProfileView{
		ID:       uuid.NewString(),
		ViewerID: viewerID,
		ViewedID: viewedID,
		ViewedAt: utils.NowISO(),
	})
}

// RecentViewerIDs returns the viewers of a profile, most recent first,
// deduplicated by viewer. Repeat views collapse to the latest one, so
// the limit applies to unique viewers after deduplication, never to the
// raw view rows.
func (s *ViewStore) RecentViewerIDs(ctx context.Context, viewedID string, limit int) ([]string, error) {
	var views []models.ProfileView
	err := s.Dynamo.QueryIndex(ctx, models.ProfileViewsTable, ViewedIndex,
		"viewedId = :viewed", "",
		map[string]types.AttributeValue{
			":viewed": &types.AttributeValueMemberS{Value: viewedID},
		}, nil, 0, true, &views)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, view := range views {
		ids = appendUnique(ids, view.ViewerID)
		if limit > 0 && len(ids) == limit {
			break
		}
	}
	return ids, nil
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
