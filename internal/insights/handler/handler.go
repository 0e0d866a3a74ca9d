// Package handler exposes the insights module over HTTP.
package handler

import (
	"customer_intel_backend/internal/insights/service"
	"customer_intel_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for insights.
type Handler struct {
	svc *service.Service
}

// New creates a new insights handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Summary returns aggregated lead and churn statistics.
// GET /api/v1/insights/summary
func (h *Handler) Summary(c *gin.Context) {
	result, err := h.svc.Summary(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
