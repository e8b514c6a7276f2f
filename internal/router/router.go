package router

import (
	"net/http"

	"github.com/alertdash/alertdash/internal/handler"
	"github.com/alertdash/alertdash/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", h.Health)

	// Dashboard and form posts. "GET /" also catches unknown paths and
	// redirects them to the dashboard.
	mux.HandleFunc("GET /", h.Index)
	mux.HandleFunc("POST /send-alert", h.SendAlert)
	mux.HandleFunc("POST /recipients", h.UpdateRecipients)
	mux.HandleFunc("POST /recipients/delete", h.DeleteRecipients)

	// JSON API
	mux.HandleFunc("GET /api/v1/recipients", h.ListRecipients)
	mux.HandleFunc("POST /api/v1/alerts", h.SendAlertAPI)

	// Apply middleware: RequestID -> Logger -> Recover -> routes
	var root http.Handler = mux
	root = mw.Recover(root)
	root = mw.Logger(root)
	root = mw.RequestID(root)

	return root
}
