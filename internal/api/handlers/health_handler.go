package handlers

import (
	"net/http"
	"time"
)

// Health reports service liveness. It requires no authentication.
func Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
