package handler

import (
	"github.com/alertdash/alertdash/internal/config"
	"github.com/alertdash/alertdash/internal/dispatch"
	"github.com/alertdash/alertdash/internal/logger"
	"github.com/alertdash/alertdash/internal/recipients"
)

// Handler holds all HTTP handlers
type Handler struct {
	store      *recipients.Store
	dispatcher *dispatch.Dispatcher
	cfg        *config.Config
	log        *logger.Logger
}

// New creates a new Handler instance
func New(store *recipients.Store, dispatcher *dispatch.Dispatcher, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		store:      store,
		dispatcher: dispatcher,
		cfg:        cfg,
		log:        log,
	}
}
