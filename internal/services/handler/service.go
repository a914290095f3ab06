package handler

import (
	"net/http"

	"eventhub/internal/services/service"
	"eventhub/pkg/config"
	httputil "eventhub/pkg/http"
	"eventhub/pkg/logger"
	"eventhub/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ServiceHandler struct {
	service service.ServiceService
	cfg     *config.Config
	log     *logger.Logger
}

func NewServiceHandler(service service.ServiceService, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{
		service: service,
		cfg:     cfg,
		log:     cfg.Log,
	}
}

func (h *ServiceHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/services", h.Create)
	router.GET("/api/services", h.List)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var svc model.Service
	if err := httputil.DecodeJSON(r, &svc); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	id, err := h.service.Create(r.Context(), &svc)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, model.CreatedResponse{ID: id}); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := httputil.ParseLimit(r, h.cfg)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	services, err := h.service.List(r.Context(), model.ServiceFilter{
		Query:    httputil.QueryText(r, "q"),
		Category: httputil.QueryText(r, "category"),
		Limit:    limit,
	})
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteSuccess(w, services); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ServiceHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}
