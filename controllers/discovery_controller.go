package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/services"
)

// DiscoveryController serves the discovery feed and filtered search.
type DiscoveryController struct {
	DiscoveryService *services.DiscoveryService
}

// NewDiscoveryController initializes the controller
func NewDiscoveryController(discoveryService *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{DiscoveryService: discoveryService}
}

// HandleGetFeed - returns the viewer's discovery feed
func (c *DiscoveryController) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("userId")
	if viewerID == "" {
		http.Error(w, `{"error": "userId query parameter is required"}`, http.StatusBadRequest)
		return
	}
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	feed, err := c.DiscoveryService.GetDiscoverFeed(r.Context(), viewerID, count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": feed})
}

// HandleSearch - runs a filtered profile search
func (c *DiscoveryController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string               `json:"userId"`
		Filters models.SearchFilters `json:"filters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	results, err := c.DiscoveryService.SearchUsers(r.Context(), request.UserID, request.Filters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": results})
}
