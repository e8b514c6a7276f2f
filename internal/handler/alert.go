package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alertdash/alertdash/internal/dispatch"
	"github.com/alertdash/alertdash/internal/mail"
)

// SendAlert handles POST /send-alert
// Dispatches the submitted message to every recipient on record and
// reports the outcome as a flash message on the dashboard.
func (h *Handler) SendAlert(w http.ResponseWriter, r *http.Request) {
	message := r.FormValue("message")

	count, err := h.dispatcher.Send(r.Context(), message)
	if err != nil {
		var flash Flash
		switch {
		case errors.Is(err, dispatch.ErrEmptyMessage):
			flash = Flash{Kind: "error", Text: "Error: Message cannot be empty."}
		case errors.Is(err, dispatch.ErrMessageTooLong):
			flash = Flash{Kind: "error", Text: fmt.Sprintf("Error: Message is too long (max %d characters).", dispatch.MaxMessageLen)}
		case errors.Is(err, dispatch.ErrNoRecipients):
			flash = Flash{Kind: "error", Text: "Error: No recipients configured. Please add recipients first."}
		case errors.Is(err, mail.ErrAuthentication):
			flash = Flash{Kind: "error", Text: "Failed to send email: authentication failed. Please check the sender credentials."}
		default:
			h.log.Error().Err(err).Msg("alert dispatch failed")
			flash = Flash{Kind: "error", Text: fmt.Sprintf("Failed to send email: %v", err)}
		}
		h.setFlashes(w, []Flash{flash})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.setFlashes(w, []Flash{{
		Kind: "success",
		Text: fmt.Sprintf("Alert sent successfully to %d recipient(s)!", count),
	}})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SendAlertAPI handles POST /api/v1/alerts
// The JSON counterpart of SendAlert, used by the admin CLI.
func (h *Handler) SendAlertAPI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	count, err := h.dispatcher.Send(r.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, "empty_message", "Message cannot be empty")
		case errors.Is(err, dispatch.ErrMessageTooLong):
			writeError(w, http.StatusBadRequest, "message_too_long", fmt.Sprintf("Message is too long (max %d characters)", dispatch.MaxMessageLen))
		case errors.Is(err, dispatch.ErrNoRecipients):
			writeError(w, http.StatusConflict, "no_recipients", "No recipients configured")
		case errors.Is(err, mail.ErrAuthentication):
			writeError(w, http.StatusBadGateway, "authentication_failed", "SMTP authentication failed")
		default:
			h.log.Error().Err(err).Msg("alert dispatch failed")
			writeError(w, http.StatusBadGateway, "send_failed", "Failed to send email")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Alert sent",
		"recipients": count,
	})
}
