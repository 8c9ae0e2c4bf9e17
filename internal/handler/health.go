package handler

import (
	"net/http"
)

// Healthz is a liveness probe.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
