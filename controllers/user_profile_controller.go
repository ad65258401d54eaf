package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/services"
)

// UserProfileController handles the profile lifecycle and settings.
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController initializes the controller
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// HandleSaveProfile - creates or updates a profile
func (c *UserProfileController) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	saved, err := c.UserProfileService.Save(r.Context(), &profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// HandleGetProfile - fetches a profile by ID on behalf of the viewer
// named by the viewerId query parameter
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	viewerID := r.URL.Query().Get("viewerId")

	profile, err := c.UserProfileService.GetForViewer(r.Context(), viewerID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleDeleteProfile - removes a profile
func (c *UserProfileController) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := c.UserProfileService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Profile deleted"})
}

// HandleListProfiles - lists profiles, newest first
func (c *UserProfileController) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	profiles, err := c.UserProfileService.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// HandleUpdateSettings - merges privacy and notification preferences
func (c *UserProfileController) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request struct {
		Privacy       *models.PrivacySettings      `json:"privacy,omitempty"`
		Notifications *models.NotificationSettings `json:"notifications,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	err := c.UserProfileService.UpdateSettings(r.Context(), id, request.Privacy, request.Notifications)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Settings updated"})
}

// HandleRequestVerification - files a photo verification request
func (c *UserProfileController) HandleRequestVerification(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request struct {
		PhotoURL string `json:"photoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.UserProfileService.RequestVerification(r.Context(), id, request.PhotoURL); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Verification requested"})
}
