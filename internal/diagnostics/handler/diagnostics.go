package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	httputil "eventhub/pkg/http"
	"eventhub/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	maxReportedCollections = 10
	maxErrorText           = 50
	diagnosticsTimeout     = 3 * time.Second
)

const (
	statusRunning        = "✅ Running"
	statusNotAvailable   = "❌ Not Available"
	statusNotInitialized = "⚠️  Available but not initialized"
	statusAvailable      = "✅ Available"
	statusWorking        = "✅ Connected & Working"
	statusURLSet         = "✅ Set"
	statusURLNotSet      = "❌ Not Set"
	connConnected        = "Connected"
	connNotConnected     = "Not Connected"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// DiagnosticsResponse is always fully populated; failures show up as status
// text, never as an error response.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type DiagnosticsHandler struct {
	probe         Probe
	urlConfigured bool
	log           *logger.Logger
}

func NewDiagnosticsHandler(probe Probe, urlConfigured bool, log *logger.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		probe:         probe,
		urlConfigured: urlConfigured,
		log:           log,
	}
}

func (h *DiagnosticsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/api/hello", h.Hello)
	router.GET("/test", h.Diagnostics)
}

func (h *DiagnosticsHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeMessage(w, "Root", "Events & Services API")
}

func (h *DiagnosticsHandler) Hello(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeMessage(w, "Hello", "Hello from the backend API!")
}

func (h *DiagnosticsHandler) Diagnostics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), diagnosticsTimeout)
	defer cancel()

	report := h.collect(ctx)

	if err := httputil.WriteJSON(w, http.StatusOK, report); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Diagnostics", "operation", "WriteJSON", "error", err)
	}
}

func (h *DiagnosticsHandler) collect(ctx context.Context) (report DiagnosticsResponse) {
	report = DiagnosticsResponse{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		DatabaseURL:      statusURLNotSet,
		ConnectionStatus: connNotConnected,
		Collections:      []string{},
	}
	if h.urlConfigured {
		report.DatabaseURL = statusURLSet
	}

	defer func() {
		if p := recover(); p != nil {
			h.log.Error("Diagnostics check panicked", "panic", p)
			report.Database = "❌ Error: " + truncate(fmt.Sprint(p), maxErrorText)
		}
	}()

	if h.probe == nil {
		return report
	}
	if !h.probe.Available() {
		report.Database = statusNotInitialized
		return report
	}

	name := h.probe.Name()
	report.Database = statusAvailable
	report.DatabaseName = &name
	report.ConnectionStatus = connConnected

	collections, err := h.probe.ListCollections(ctx)
	if err != nil {
		h.log.Warn("Diagnostics could not list collections", "error", err)
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorText)
		return report
	}

	if len(collections) > maxReportedCollections {
		collections = collections[:maxReportedCollections]
	}
	if collections != nil {
		report.Collections = collections
	}
	report.Database = statusWorking
	return report
}

func (h *DiagnosticsHandler) writeMessage(w http.ResponseWriter, handler, message string) {
	if err := httputil.WriteJSON(w, http.StatusOK, MessageResponse{Message: message}); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteJSON", "error", err)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
