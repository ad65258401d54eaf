package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/services"
)

// ChatController handles messaging.
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the controller
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// HandleSendMessage - sends a message after the entitlement gate
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
		Text       string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), request.SenderID, request.ReceiverID, request.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// HandleListMessages - returns the conversation between two users
func (c *ChatController) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	userA := r.URL.Query().Get("userId")
	userB := r.URL.Query().Get("partnerId")
	if userA == "" || userB == "" {
		http.Error(w, `{"error": "userId and partnerId query parameters are required"}`, http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := c.ChatService.ListMessages(r.Context(), userA, userB, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// HandleListConversations - returns the user's inbox
func (c *ChatController) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	conversations, err := c.ChatService.ListConversations(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"conversations": conversations})
}
