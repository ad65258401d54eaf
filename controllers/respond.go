package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/allanalmatech/ummahMatch/services"
)

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps service errors onto HTTP statuses: validation errors
// are 400, entitlement denials 403, missing documents 404, everything
// else 500. Denial and validation reasons are surfaced verbatim.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case services.IsInvalid(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case services.IsDenied(err):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
