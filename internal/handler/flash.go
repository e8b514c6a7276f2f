package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const flashCookieName = "alertdash_flash"

// Flash is a one-shot status message shown on the next dashboard render.
type Flash struct {
	Kind string `json:"kind"` // "success" or "error"
	Text string `json:"text"`
}

// setFlashes stores flashes in an HMAC-signed cookie. The cookie value is
// base64(payload).base64(signature); an unsigned or tampered cookie is
// dropped on read.
func (h *Handler) setFlashes(w http.ResponseWriter, flashes []Flash) {
	if len(flashes) == 0 {
		return
	}
	payload, err := json.Marshal(flashes)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to encode flash messages")
		return
	}

	enc := base64.RawURLEncoding
	value := enc.EncodeToString(payload) + "." + enc.EncodeToString(h.signFlash(payload))

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes reads and clears the flash cookie, returning nil when the
// cookie is absent, malformed, or fails signature verification.
func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	// Clear regardless of validity; flashes are single-use.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	enc := base64.RawURLEncoding
	payloadB64, sigB64, ok := strings.Cut(cookie.Value, ".")
	if !ok {
		return nil
	}
	payload, err := enc.DecodeString(payloadB64)
	if err != nil {
		return nil
	}
	sig, err := enc.DecodeString(sigB64)
	if err != nil {
		return nil
	}
	if !hmac.Equal(sig, h.signFlash(payload)) {
		h.log.Warn().Msg("flash cookie failed signature verification")
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}
	return flashes
}

func (h *Handler) signFlash(payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(h.cfg.Security.SecretKey))
	mac.Write(payload)
	return mac.Sum(nil)
}
