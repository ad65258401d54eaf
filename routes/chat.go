package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterChatRoutes sets up the messaging routes under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/messages", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleListMessages).Methods("GET")
	chatRouter.HandleFunc("/conversations/{id}", controller.HandleListConversations).Methods("GET")
}
