package handler

import (
	"net/http"

	"eventhub/internal/seed/service"
	httputil "eventhub/pkg/http"
	"eventhub/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type SeedResponse struct {
	Status  string         `json:"status"`
	Created service.Result `json:"created"`
}

type SeedHandler struct {
	service service.SeedService
	log     *logger.Logger
}

func NewSeedHandler(service service.SeedService, log *logger.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		log:     log,
	}
}

func (h *SeedHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/seed", h.Seed)
}

func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Seed", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, SeedResponse{Status: "ok", Created: result}); err != nil {
		h.log.Error("failed to write success response", "handler", "Seed", "operation", "WriteSuccess", "error", err)
	}
}
