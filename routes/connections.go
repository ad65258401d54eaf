package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterConnectionRoutes sets up the likes/viewers/favorites/matches routes under /api/connections
func RegisterConnectionRoutes(r *mux.Router, connectionService *services.ConnectionService) {
	controller := controllers.NewConnectionController(connectionService)

	connectionRouter := r.PathPrefix("/api/connections").Subrouter()
	connectionRouter.HandleFunc("/{id}/liked", controller.HandleUsersILiked).Methods("GET")
	connectionRouter.HandleFunc("/{id}/likers", controller.HandleUsersWhoLikedMe).Methods("GET")
	connectionRouter.HandleFunc("/{id}/viewers", controller.HandleRecentViewers).Methods("GET")
	connectionRouter.HandleFunc("/{id}/favorites", controller.HandleFavorites).Methods("GET")
	connectionRouter.HandleFunc("/{id}/matches", controller.HandleMatches).Methods("GET")
	connectionRouter.HandleFunc("/favorite", controller.HandleToggleFavorite).Methods("POST")
	connectionRouter.HandleFunc("/view", controller.HandleRecordView).Methods("POST")
}
