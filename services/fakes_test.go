package services

import (
	"context"
	"errors"
	"sort"

	"github.com/allanalmatech/ummahMatch/models"
)

// In-memory fakes for the store contracts. Each fake keeps the minimum
// state the services under test observe.

type edge struct {
	from, to string
}

type fakeProfileStore struct {
	profiles map[string]models.UserProfile
	grantErr error
}

func newFakeProfileStore(profiles ...models.UserProfile) *fakeProfileStore {
	store := &fakeProfileStore{profiles: make(map[string]models.UserProfile)}
	for _, profile := range profiles {
		store.profiles[profile.ID] = profile
	}
	return store
}

func (f *fakeProfileStore) Get(_ context.Context, id string) (*models.UserProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := profile
	return &copied, nil
}

func (f *fakeProfileStore) GetMany(_ context.Context, ids []string) ([]models.UserProfile, error) {
	var found []models.UserProfile
	for _, id := range ids {
		if profile, ok := f.profiles[id]; ok {
			found = append(found, profile)
		}
	}
	return found, nil
}

func (f *fakeProfileStore) Put(_ context.Context, profile *models.UserProfile) error {
	f.profiles[profile.ID] = *profile
	return nil
}

func (f *fakeProfileStore) SetFields(_ context.Context, id string, fields map[string]interface{}) error {
	profile, ok := f.profiles[id]
	if !ok {
		return ErrItemNotFound
	}
	for field, value := range fields {
		switch field {
		case "status":
			profile.Status = value.(string)
		case "subscription":
			profile.Subscription = value.(string)
		case "verificationStatus":
			profile.VerificationStatus = value.(string)
		case "verificationPhotoUrl":
			profile.VerificationPhotoURL = value.(string)
		case "privacy":
			profile.Privacy = value.(*models.PrivacySettings)
		case "notifications":
			profile.Notifications = value.(*models.NotificationSettings)
		}
	}
	f.profiles[id] = profile
	return nil
}

func (f *fakeProfileStore) Delete(_ context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeProfileStore) ListBoosted(_ context.Context, now string) ([]models.UserProfile, error) {
	var boosted []models.UserProfile
	for _, profile := range f.profiles {
		if profile.BoostActiveUntil > now {
			boosted = append(boosted, profile)
		}
	}
	sort.Slice(boosted, func(i, j int) bool {
		return boosted[i].BoostActiveUntil > boosted[j].BoostActiveUntil
	})
	return boosted, nil
}

func (f *fakeProfileStore) ListRecent(_ context.Context, limit int) ([]models.UserProfile, error) {
	var recent []models.UserProfile
	for _, profile := range f.profiles {
		recent = append(recent, profile)
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (f *fakeProfileStore) ListByGender(_ context.Context, gender string, limit int) ([]models.UserProfile, error) {
	var matching []models.UserProfile
	for _, profile := range f.profiles {
		if profile.Gender == gender {
			matching = append(matching, profile)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].CreatedAt > matching[j].CreatedAt
	})
	if limit > 0 && len(matching) > limit {
		matching = matching[:limit]
	}
	return matching, nil
}

func (f *fakeProfileStore) AddBoosts(_ context.Context, userID string, quantity int) error {
	if f.grantErr != nil {
		return f.grantErr
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return ErrItemNotFound
	}
	profile.Boosts += quantity
	f.profiles[userID] = profile
	return nil
}

func (f *fakeProfileStore) ActivateBoost(_ context.Context, userID, until string) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return ErrItemNotFound
	}
	profile.Boosts--
	profile.BoostActiveUntil = until
	f.profiles[userID] = profile
	return nil
}

func (f *fakeProfileStore) SetSubscription(_ context.Context, userID, plan string) error {
	if f.grantErr != nil {
		return f.grantErr
	}
	return f.SetFields(context.Background(), userID, map[string]interface{}{"subscription": plan})
}

type fakeLikeLedger struct {
	edges []edge
}

func (f *fakeLikeLedger) Record(_ context.Context, likerID, likedID string) error {
	f.edges = append(f.edges, edge{likerID, likedID})
	return nil
}

func (f *fakeLikeLedger) Exists(_ context.Context, likerID, likedID string) (bool, error) {
	for _, e := range f.edges {
		if e.from == likerID && e.to == likedID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikeLedger) LikedIDs(_ context.Context, likerID string) ([]string, error) {
	var ids []string
	for _, e := range f.edges {
		if e.from == likerID {
			ids = appendUnique(ids, e.to)
		}
	}
	return ids, nil
}

func (f *fakeLikeLedger) LikerIDs(_ context.Context, likedID string) ([]string, error) {
	var ids []string
	for _, e := range f.edges {
		if e.to == likedID {
			ids = appendUnique(ids, e.from)
		}
	}
	return ids, nil
}

type fakeDislikeLedger struct {
	edges []edge
}

func (f *fakeDislikeLedger) Record(_ context.Context, dislikerID, dislikedID string) error {
	f.edges = append(f.edges, edge{dislikerID, dislikedID})
	return nil
}

func (f *fakeDislikeLedger) DislikedIDs(_ context.Context, dislikerID string) ([]string, error) {
	var ids []string
	for _, e := range f.edges {
		if e.from == dislikerID {
			ids = appendUnique(ids, e.to)
		}
	}
	return ids, nil
}

// fakeBlockLedger removes the pair's match through the shared registry,
// mirroring the transactional store.
type fakeBlockLedger struct {
	edges   []edge
	matches *fakeMatchRegistry
}

func (f *fakeBlockLedger) RecordWithMatchRemoval(_ context.Context, blockerID, blockedID string) error {
	f.edges = append(f.edges, edge{blockerID, blockedID})
	if f.matches != nil {
		delete(f.matches.docs, models.PairID(blockerID, blockedID))
	}
	return nil
}

func (f *fakeBlockLedger) BlockedIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, e := range f.edges {
		if e.from == userID {
			ids = appendUnique(ids, e.to)
		}
		if e.to == userID {
			ids = appendUnique(ids, e.from)
		}
	}
	return ids, nil
}

type fakeFavoriteLedger struct {
	edges []edge
}

func (f *fakeFavoriteLedger) Record(_ context.Context, favoriterID, favoritedID string) error {
	f.edges = append(f.edges, edge{favoriterID, favoritedID})
	return nil
}

func (f *fakeFavoriteLedger) Remove(_ context.Context, favoriterID, favoritedID string) error {
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.from != favoriterID || e.to != favoritedID {
			kept = append(kept, e)
		}
	}
	f.edges = kept
	return nil
}

func (f *fakeFavoriteLedger) Exists(_ context.Context, favoriterID, favoritedID string) (bool, error) {
	for _, e := range f.edges {
		if e.from == favoriterID && e.to == favoritedID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteLedger) FavoritedIDs(_ context.Context, favoriterID string) ([]string, error) {
	var ids []string
	for _, e := range f.edges {
		if e.from == favoriterID {
			ids = appendUnique(ids, e.to)
		}
	}
	return ids, nil
}

type fakeViewLedger struct {
	views []edge // from = viewer, to = viewed, newest appended last
}

func (f *fakeViewLedger) Record(_ context.Context, viewerID, viewedID string) error {
	f.views = append(f.views, edge{viewerID, viewedID})
	return nil
}

func (f *fakeViewLedger) RecentViewerIDs(_ context.Context, viewedID string, limit int) ([]string, error) {
	var ids []string
	for i := len(f.views) - 1; i >= 0; i-- {
		if f.views[i].to == viewedID {
			ids = appendUnique(ids, f.views[i].from)
		}
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

type fakeMatchRegistry struct {
	docs map[string]models.Match
}

func newFakeMatchRegistry() *fakeMatchRegistry {
	return &fakeMatchRegistry{docs: make(map[string]models.Match)}
}

func (f *fakeMatchRegistry) CreateIfAbsent(_ context.Context, match models.Match) (bool, error) {
	if _, exists := f.docs[match.PairID]; exists {
		return false, nil
	}
	f.docs[match.PairID] = match
	return true, nil
}

func (f *fakeMatchRegistry) Exists(_ context.Context, userA, userB string) (bool, error) {
	_, ok := f.docs[models.PairID(userA, userB)]
	return ok, nil
}

func (f *fakeMatchRegistry) PartnerIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, match := range f.docs {
		for _, id := range match.UserIDs {
			if id != userID {
				continue
			}
			for _, partner := range match.UserIDs {
				if partner != userID {
					ids = appendUnique(ids, partner)
				}
			}
		}
	}
	return ids, nil
}

type fakeFlagCounter struct {
	counts map[string]int
}

func (f *fakeFlagCounter) PendingCounts(_ context.Context) (map[string]int, error) {
	if f.counts == nil {
		return map[string]int{}, nil
	}
	return f.counts, nil
}

type sentNotification struct {
	userID string
	data   models.NotificationData
}

type fakeNotifier struct {
	sent []sentNotification
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, userID string, data models.NotificationData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentNotification{userID: userID, data: data})
	return nil
}

func (f *fakeNotifier) sentTo(userID string) []models.NotificationData {
	var datas []models.NotificationData
	for _, n := range f.sent {
		if n.userID == userID {
			datas = append(datas, n.data)
		}
	}
	return datas
}

type fakePurchaseLedger struct {
	records map[string]models.PurchaseRecord
}

func newFakePurchaseLedger() *fakePurchaseLedger {
	return &fakePurchaseLedger{records: make(map[string]models.PurchaseRecord)}
}

func (f *fakePurchaseLedger) Put(_ context.Context, record models.PurchaseRecord) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakePurchaseLedger) Get(_ context.Context, id string) (*models.PurchaseRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &record, nil
}

func (f *fakePurchaseLedger) List(_ context.Context) ([]models.PurchaseRecord, error) {
	var records []models.PurchaseRecord
	for _, record := range f.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records, nil
}

func (f *fakePurchaseLedger) SetStatus(_ context.Context, id, status string) error {
	record, ok := f.records[id]
	if !ok {
		return ErrItemNotFound
	}
	record.Status = status
	f.records[id] = record
	return nil
}

type fakeConversationLedger struct {
	messages []models.Message
	previews map[string]models.Conversation
}

func newFakeConversationLedger() *fakeConversationLedger {
	return &fakeConversationLedger{previews: make(map[string]models.Conversation)}
}

func (f *fakeConversationLedger) AppendMessage(_ context.Context, message models.Message) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeConversationLedger) UpsertPreview(_ context.Context, conversation models.Conversation) error {
	f.previews[conversation.ID] = conversation
	return nil
}

func (f *fakeConversationLedger) ListMessages(_ context.Context, conversationID string, limit int) ([]models.Message, error) {
	var messages []models.Message
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			messages = append(messages, message)
		}
	}
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}

func (f *fakeConversationLedger) ListForUser(_ context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	for _, conversation := range f.previews {
		for _, participant := range conversation.Participants {
			if participant == userID {
				conversations = append(conversations, conversation)
			}
		}
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt > conversations[j].LastMessageAt
	})
	return conversations, nil
}

type fakeGenerator struct {
	matchmakingOut  *models.MatchmakingOutput
	icebreakerOut   *models.IcebreakerOutput
	suggestionsOut  *models.ProfilePromptOutput
	transformOut    *models.PhotoTransformOutput
	matchmakingIns  []models.MatchmakingInput
	generatorCalled bool
}

var errNoCannedResponse = errors.New("no canned response")

func (f *fakeGenerator) SuggestMatches(_ context.Context, in models.MatchmakingInput) (*models.MatchmakingOutput, error) {
	f.generatorCalled = true
	f.matchmakingIns = append(f.matchmakingIns, in)
	if f.matchmakingOut == nil {
		return nil, errNoCannedResponse
	}
	return f.matchmakingOut, nil
}

func (f *fakeGenerator) Icebreakers(_ context.Context, in models.IcebreakerInput) (*models.IcebreakerOutput, error) {
	f.generatorCalled = true
	if f.icebreakerOut == nil {
		return nil, errNoCannedResponse
	}
	return f.icebreakerOut, nil
}

func (f *fakeGenerator) ProfileSuggestions(_ context.Context, in models.ProfilePromptInput) (*models.ProfilePromptOutput, error) {
	f.generatorCalled = true
	if f.suggestionsOut == nil {
		return nil, errNoCannedResponse
	}
	return f.suggestionsOut, nil
}

func (f *fakeGenerator) TransformPhoto(_ context.Context, in models.PhotoTransformInput) (*models.PhotoTransformOutput, error) {
	f.generatorCalled = true
	if f.transformOut == nil {
		return nil, errNoCannedResponse
	}
	return f.transformOut, nil
}
