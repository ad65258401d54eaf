package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterInteractionRoutes sets up routes for like/dislike/block/report operations under /api/interactions
func RegisterInteractionRoutes(r *mux.Router, matchService *services.MatchService, reportService *services.ReportService) {
	controller := controllers.NewInteractionController(matchService, reportService)

	interactionRouter := r.PathPrefix("/api/interactions").Subrouter()
	interactionRouter.HandleFunc("/like", controller.HandleLikeUser).Methods("POST")
	interactionRouter.HandleFunc("/dislike", controller.HandleDislikeUser).Methods("POST")
	interactionRouter.HandleFunc("/block", controller.HandleBlockUser).Methods("POST")
	interactionRouter.HandleFunc("/report", controller.HandleReportUser).Methods("POST")
}
