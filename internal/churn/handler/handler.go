// Package handler exposes the churn module over HTTP.
package handler

import (
	"customer_intel_backend/internal/churn/service"
	"customer_intel_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for churn risk.
type Handler struct {
	svc *service.Service
}

// New creates a new churn handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// AtRisk returns all scored clients sorted descending by churn probability.
// GET /api/v1/churn/at-risk
func (h *Handler) AtRisk(c *gin.Context) {
	result, err := h.svc.AtRisk(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
