package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterDiscoveryRoutes sets up the feed and search routes under /api/discover
func RegisterDiscoveryRoutes(r *mux.Router, discoveryService *services.DiscoveryService) {
	controller := controllers.NewDiscoveryController(discoveryService)

	discoveryRouter := r.PathPrefix("/api/discover").Subrouter()
	discoveryRouter.HandleFunc("/feed", controller.HandleGetFeed).Methods("GET")
	discoveryRouter.HandleFunc("/search", controller.HandleSearch).Methods("POST")
}
