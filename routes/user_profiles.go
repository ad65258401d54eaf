package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterUserProfileRoutes sets up the profile lifecycle routes under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleSaveProfile).Methods("PUT")
	profileRouter.HandleFunc("", controller.HandleListProfiles).Methods("GET")
	profileRouter.HandleFunc("/{id}", controller.HandleGetProfile).Methods("GET")
	profileRouter.HandleFunc("/{id}", controller.HandleDeleteProfile).Methods("DELETE")
	profileRouter.HandleFunc("/{id}/settings", controller.HandleUpdateSettings).Methods("PATCH")
	profileRouter.HandleFunc("/{id}/verification", controller.HandleRequestVerification).Methods("POST")
}
