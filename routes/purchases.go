package routes

import (
	"github.com/gorilla/mux"

	"github.com/allanalmatech/ummahMatch/controllers"
	"github.com/allanalmatech/ummahMatch/services"
)

// RegisterPurchaseRoutes sets up the payment callback, boost action, and
// admin approval routes under /api/purchases
func RegisterPurchaseRoutes(r *mux.Router, purchaseService *services.PurchaseService, entitlementService *services.EntitlementService) {
	controller := controllers.NewPurchaseController(purchaseService, entitlementService)

	purchaseRouter := r.PathPrefix("/api/purchases").Subrouter()
	purchaseRouter.HandleFunc("", controller.HandlePaymentCallback).Methods("POST")
	purchaseRouter.HandleFunc("", controller.HandleListPurchases).Methods("GET")
	purchaseRouter.HandleFunc("/{id}/approve", controller.HandleApprovePurchase).Methods("POST")
	purchaseRouter.HandleFunc("/{id}/reject", controller.HandleRejectPurchase).Methods("POST")
	purchaseRouter.HandleFunc("/boost", controller.HandleUseBoost).Methods("POST")
}
