package handler

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed index.html.tmpl
var indexTemplate string

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

type indexData struct {
	Sender     string
	Recipients []string
	Flashes    []Flash
}

// Index renders the dashboard page. Unknown paths fall through to this
// handler and are redirected to the dashboard.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	data := indexData{
		Sender:     h.cfg.Mail.SenderAddress,
		Recipients: h.store.Load(),
		Flashes:    h.popFlashes(w, r),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		h.log.Error().Err(err).Msg("failed to render dashboard")
	}
}
