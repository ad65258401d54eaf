package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/services"
)

// AIController fronts the generation flows.
type AIController struct {
	AIService *services.AIService
}

// NewAIController initializes the controller
func NewAIController(aiService *services.AIService) *AIController {
	return &AIController{AIService: aiService}
}

// HandleSuggestMatches - ranks the user's discovery pool
func (c *AIController) HandleSuggestMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId query parameter is required"}`, http.StatusBadRequest)
		return
	}

	matches, err := c.AIService.SuggestMatches(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// HandleIcebreakers - generates conversation openers for a pair
func (c *AIController) HandleIcebreakers(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	icebreakers, err := c.AIService.Icebreakers(r.Context(), request.SenderID, request.ReceiverID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"icebreakers": icebreakers})
}

// HandleProfileSuggestions - generates description drafts
func (c *AIController) HandleProfileSuggestions(w http.ResponseWriter, r *http.Request) {
	var input models.ProfilePromptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	suggestions, err := c.AIService.ProfileSuggestions(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

// HandleTransformPhoto - runs a photo transformation (Platinum only)
func (c *AIController) HandleTransformPhoto(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		models.PhotoTransformInput
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	output, err := c.AIService.TransformPhoto(r.Context(), request.UserID, request.PhotoTransformInput)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
