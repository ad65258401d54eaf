package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/models"
	"github.com/allanalmatech/ummahMatch/services"
)

// PurchaseController handles payment callbacks, the boost action, and
// the admin approval queue.
type PurchaseController struct {
	PurchaseService    *services.PurchaseService
	EntitlementService *services.EntitlementService
}

// NewPurchaseController initializes the controller
func NewPurchaseController(purchaseService *services.PurchaseService, entitlementService *services.EntitlementService) *PurchaseController {
	return &PurchaseController{PurchaseService: purchaseService, EntitlementService: entitlementService}
}

// HandlePaymentCallback - files a pending purchase after payment
func (c *PurchaseController) HandlePaymentCallback(w http.ResponseWriter, r *http.Request) {
	var record models.PurchaseRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	created, err := c.PurchaseService.Create(r.Context(), record)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Printf("Purchase %s recorded for user %s (%s)", created.ID, created.UserID, created.ItemID)
	writeJSON(w, http.StatusCreated, created)
}

// HandleListPurchases - the admin review queue, newest first
func (c *PurchaseController) HandleListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := c.PurchaseService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"purchases": purchases})
}

// HandleApprovePurchase - grants the item and completes the record
func (c *PurchaseController) HandleApprovePurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := c.PurchaseService.Approve(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Purchase approved"})
}

// HandleRejectPurchase - rejects the record without granting
func (c *PurchaseController) HandleRejectPurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := c.PurchaseService.Reject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Purchase rejected"})
}

// HandleUseBoost - consumes one boost credit
func (c *PurchaseController) HandleUseBoost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	until, err := c.EntitlementService.UseBoost(r.Context(), request.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "boostActiveUntil": until})
}
