package handlers

import (
	"net/http"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/utils"
)

// HandleHealth handles GET /health
// Basic health check - always returns 200 if service is running
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, "OK")
}
