package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alertdash/alertdash/internal/recipients"
)

// UpdateRecipients handles POST /recipients
// One form may carry both an address to add and an address to remove;
// the add is processed first. Inputs are trimmed and lowercased before
// they reach the store.
func (h *Handler) UpdateRecipients(w http.ResponseWriter, r *http.Request) {
	add := strings.ToLower(strings.TrimSpace(r.FormValue("add")))
	remove := strings.ToLower(strings.TrimSpace(r.FormValue("remove")))

	current := h.store.Load()
	var flashes []Flash
	changed := false

	if add != "" {
		updated, err := h.store.Add(add, current)
		switch {
		case errors.Is(err, recipients.ErrInvalidEmail):
			flashes = append(flashes, Flash{Kind: "error", Text: fmt.Sprintf("Invalid email format: %s", add)})
		case errors.Is(err, recipients.ErrDuplicate):
			flashes = append(flashes, Flash{Kind: "error", Text: fmt.Sprintf("%s is already in the recipient list.", add)})
		default:
			current = updated
			changed = true
			flashes = append(flashes, Flash{Kind: "success", Text: fmt.Sprintf("Added %s to the recipient list.", add)})
		}
	}

	if remove != "" {
		updated, err := h.store.Remove(remove, current)
		if errors.Is(err, recipients.ErrNotFound) {
			flashes = append(flashes, Flash{Kind: "error", Text: fmt.Sprintf("%s was not found in the recipient list.", remove)})
		} else {
			current = updated
			changed = true
			flashes = append(flashes, Flash{Kind: "success", Text: fmt.Sprintf("Removed %s from the recipient list.", remove)})
		}
	}

	if changed {
		if err := h.store.Save(current); err != nil {
			flashes = append(flashes, Flash{Kind: "error", Text: "Error saving recipient list. Please try again."})
		}
	}

	h.setFlashes(w, flashes)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteRecipients handles POST /recipients/delete
// Removes the backing file entirely.
func (h *Handler) DeleteRecipients(w http.ResponseWriter, r *http.Request) {
	var flash Flash
	err := h.store.Clear()
	switch {
	case errors.Is(err, recipients.ErrNotFound):
		flash = Flash{Kind: "error", Text: "No recipient list found to delete."}
	case err != nil:
		flash = Flash{Kind: "error", Text: fmt.Sprintf("Error deleting recipient list: %v", err)}
	default:
		flash = Flash{Kind: "success", Text: "All recipients deleted successfully."}
	}

	h.setFlashes(w, []Flash{flash})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ListRecipients handles GET /api/v1/recipients
// Returns the current recipient list as JSON for the admin CLI and other
// programmatic callers.
func (h *Handler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	addrs := h.store.Load()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sender":     h.cfg.Mail.SenderAddress,
		"recipients": addrs,
		"count":      len(addrs),
	})
}
