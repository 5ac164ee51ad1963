package delivery

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type PageHandler struct {
	log         *logger.ZapLogger
	maxUploadMB int64
}

func NewPageHandler(log *logger.ZapLogger, maxUploadMB int64) *PageHandler {
	return &PageHandler{log: log, maxUploadMB: maxUploadMB}
}

func (h *PageHandler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]any{"MaxUploadMB": h.maxUploadMB}); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "render index", Error: err, Service: "delivery"})
	}
}

func (h *PageHandler) Warmup(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *PageHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
