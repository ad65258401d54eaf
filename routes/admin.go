package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterAdminRoutes sets up the moderation routes under /api/admin
func RegisterAdminRoutes(r *mux.Router, userProfileService *services.UserProfileService, reportService *services.ReportService) {
	controller := controllers.NewAdminController(userProfileService, reportService)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.HandleFunc("/reports", controller.HandleListReports).Methods("GET")
	adminRouter.HandleFunc("/reports/{id}/status", controller.HandleSetReportStatus).Methods("PATCH")
	adminRouter.HandleFunc("/users/{id}/status", controller.HandleSetUserStatus).Methods("PATCH")
	adminRouter.HandleFunc("/users/{id}/subscription", controller.HandleSetUserSubscription).Methods("PATCH")
	adminRouter.HandleFunc("/users/{id}/verification", controller.HandleResolveVerification).Methods("PATCH")
}
