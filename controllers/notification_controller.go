package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/services"
)

// NotificationController serves the notification inbox.
type NotificationController struct {
	NotificationService *services.NotificationService
}

// NewNotificationController initializes the controller
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// HandleListNotifications - the recipient's notifications, newest first
func (c *NotificationController) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notifications, err := c.NotificationService.ListForUser(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

// HandleMarkRead - marks one notification read
func (c *NotificationController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := c.NotificationService.MarkRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
