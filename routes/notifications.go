package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterNotificationRoutes sets up the notification inbox routes under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, notificationService *services.NotificationService) {
	controller := controllers.NewNotificationController(notificationService)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.HandleFunc("/user/{id}", controller.HandleListNotifications).Methods("GET")
	notificationRouter.HandleFunc("/{id}/read", controller.HandleMarkRead).Methods("POST")
}
