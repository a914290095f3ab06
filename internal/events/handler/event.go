package handler

import (
	"net/http"

	"eventhub/internal/events/service"
	"eventhub/pkg/config"
	httputil "eventhub/pkg/http"
	"eventhub/pkg/logger"
	"eventhub/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type EventHandler struct {
	service service.EventService
	cfg     *config.Config
	log     *logger.Logger
}

func NewEventHandler(service service.EventService, cfg *config.Config) *EventHandler {
	return &EventHandler{
		service: service,
		cfg:     cfg,
		log:     cfg.Log,
	}
}

func (h *EventHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/events", h.Create)
	router.GET("/api/events", h.List)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event model.Event
	if err := httputil.DecodeJSON(r, &event); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	id, err := h.service.Create(r.Context(), &event)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, model.CreatedResponse{ID: id}); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := httputil.ParseLimit(r, h.cfg)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	featured, err := httputil.ParseOptionalBool(r, "featured")
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	events, err := h.service.List(r.Context(), model.EventFilter{
		Query:    httputil.QueryText(r, "q"),
		Featured: featured,
		Limit:    limit,
	})
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteSuccess(w, events); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *EventHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}
