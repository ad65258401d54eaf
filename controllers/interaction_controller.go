package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/allanalmatech/ummahMatch/services"
)

// InteractionController handles likes, dislikes, blocks and reports.
type InteractionController struct {
	MatchService  *services.MatchService
	ReportService *services.ReportService
}

// NewInteractionController initializes the controller
func NewInteractionController(matchService *services.MatchService, reportService *services.ReportService) *InteractionController {
	return &InteractionController{MatchService: matchService, ReportService: reportService}
}

type pairRequest struct {
	UserID   string `json:"userId"`
	TargetID string `json:"targetId"`
}

// HandleLikeUser - user likes another user, possibly creating a match
func (c *InteractionController) HandleLikeUser(w http.ResponseWriter, r *http.Request) {
	var request pairRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	isMatch, err := c.MatchService.LikeUser(r.Context(), request.UserID, request.TargetID)
	if err != nil {
		writeError(w, err)
		return
	}

	if isMatch {
		log.Printf("%s and %s matched", request.UserID, request.TargetID)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "success", "isMatch": isMatch})
}

// HandleDislikeUser - user dislikes another user
func (c *InteractionController) HandleDislikeUser(w http.ResponseWriter, r *http.Request) {
	var request pairRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.MatchService.DislikeUser(r.Context(), request.UserID, request.TargetID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "User disliked"})
}

// HandleBlockUser - user blocks another user; any match is removed
func (c *InteractionController) HandleBlockUser(w http.ResponseWriter, r *http.Request) {
	var request pairRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.MatchService.BlockUser(r.Context(), request.UserID, request.TargetID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "User blocked"})
}

// HandleReportUser - user reports another user for moderation review
func (c *InteractionController) HandleReportUser(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ReporterID     string `json:"reporterId"`
		ReportedUserID string `json:"reportedUserId"`
		Reason         string `json:"reason"`
		Details        string `json:"details,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	err := c.ReportService.Create(r.Context(), request.ReporterID, request.ReportedUserID, request.Reason, request.Details)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "success", "message": "Report submitted"})
}
