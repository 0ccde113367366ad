package handler

import "net/http"

// HandleRoot is the welcome/health endpoint.
//
// HTTP: GET /
//
// Unauthenticated on purpose — load balancers and uptime checks hit it.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to DishDelight!"})
}
