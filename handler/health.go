package handler

import (
	"net/http"

	"github.com/lumenops/vendor-extract-service/common"
	"github.com/lumenops/vendor-extract-service/common/utils"

	"github.com/go-chi/chi/v5"
)

type HealthHandler struct {
	router *chi.Mux
}

func NewHealthHandler() *HealthHandler {
	h := &HealthHandler{}

	r := chi.NewRouter()
	r.Get("/", h.handleHealth)

	h.router = r
	return h
}

func (h *HealthHandler) Router() *chi.Mux {
	return h.router
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": common.AppName,
	})
}
