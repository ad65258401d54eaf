package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterAIRoutes sets up the generation flow routes under /api/ai
func RegisterAIRoutes(r *mux.Router, aiService *services.AIService) {
	controller := controllers.NewAIController(aiService)

	aiRouter := r.PathPrefix("/api/ai").Subrouter()
	aiRouter.HandleFunc("/matchmaking", controller.HandleSuggestMatches).Methods("GET")
	aiRouter.HandleFunc("/icebreakers", controller.HandleIcebreakers).Methods("POST")
	aiRouter.HandleFunc("/profile-suggestions", controller.HandleProfileSuggestions).Methods("POST")
	aiRouter.HandleFunc("/photo-transform", controller.HandleTransformPhoto).Methods("POST")
}
