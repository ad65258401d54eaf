package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/services"
)

// ConnectionController serves likes, viewers, favorites and matches.
type ConnectionController struct {
	ConnectionService *services.ConnectionService
}

// NewConnectionController initializes the controller
func NewConnectionController(connectionService *services.ConnectionService) *ConnectionController {
	return &ConnectionController{ConnectionService: connectionService}
}

// HandleUsersILiked - everyone the user has liked
func (c *ConnectionController) HandleUsersILiked(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	profiles, err := c.ConnectionService.UsersILiked(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// HandleUsersWhoLikedMe - incoming likes, preview gated
func (c *ConnectionController) HandleUsersWhoLikedMe(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	page, err := c.ConnectionService.UsersWhoLikedMe(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HandleRecentViewers - who viewed the profile, preview gated
func (c *ConnectionController) HandleRecentViewers(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	page, err := c.ConnectionService.RecentViewers(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HandleFavorites - the user's favorites list
func (c *ConnectionController) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	profiles, err := c.ConnectionService.FavoriteProfiles(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// HandleToggleFavorite - adds or removes a favorite
func (c *ConnectionController) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		TargetID string `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	favorited, err := c.ConnectionService.ToggleFavorite(r.Context(), request.UserID, request.TargetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "success", "favorited": favorited})
}

// HandleMatches - the user's current match partners
func (c *ConnectionController) HandleMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	profiles, err := c.ConnectionService.MatchedProfiles(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// HandleRecordView - logs a profile view
func (c *ConnectionController) HandleRecordView(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ViewerID string `json:"viewerId"`
		ViewedID string `json:"viewedId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.ConnectionService.RecordView(r.Context(), request.ViewerID, request.ViewedID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
