// Package insights provides the insights bounded context module.
package insights

import (
	apphttp "customer_intel_backend/internal/http"
	"customer_intel_backend/internal/insights/handler"
	"customer_intel_backend/internal/insights/service"
	"customer_intel_backend/platform/logger"
)

// Module is the insights bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the insights module. It consumes the
// leads and churn services read-only.
func NewModule(leads service.LeadRecordSource, churn service.ChurnSource, log *logger.Logger) *Module {
	svc := service.New(leads, churn, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "insights"
}

// RegisterRoutes mounts insights routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/insights/summary", m.handler.Summary)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
