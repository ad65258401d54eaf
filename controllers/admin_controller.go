package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/services"
)

// AdminController handles moderation: reports, account status,
// subscription overrides and verification decisions. Routes under
// /api/admin are expected to sit behind an admin-only gateway.
type AdminController struct {
	UserProfileService *services.UserProfileService
	ReportService      *services.ReportService
}

// NewAdminController initializes the controller
func NewAdminController(userProfileService *services.UserProfileService, reportService *services.ReportService) *AdminController {
	return &AdminController{UserProfileService: userProfileService, ReportService: reportService}
}

// HandleListReports - all reports, newest first
func (c *AdminController) HandleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := c.ReportService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

// HandleSetReportStatus - resolves or dismisses a report
func (c *AdminController) HandleSetReportStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.ReportService.SetStatus(r.Context(), id, request.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Report updated"})
}

// HandleSetUserStatus - suspends or reactivates an account
func (c *AdminController) HandleSetUserStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.UserProfileService.SetStatus(r.Context(), id, request.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "User status updated"})
}

// HandleSetUserSubscription - admin override of a user's plan
func (c *AdminController) HandleSetUserSubscription(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request struct {
		Subscription string `json:"subscription"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.UserProfileService.SetSubscription(r.Context(), id, request.Subscription); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Subscription updated"})
}

// HandleResolveVerification - the admin decision on a verification request
func (c *AdminController) HandleResolveVerification(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.UserProfileService.ResolveVerification(r.Context(), id, request.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Verification updated"})
}
