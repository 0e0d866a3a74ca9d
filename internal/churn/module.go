// Package churn provides the churn risk bounded context module.
package churn

import (
	"customer_intel_backend/internal/churn/handler"
	"customer_intel_backend/internal/churn/service"
	"customer_intel_backend/internal/dataset"
	apphttp "customer_intel_backend/internal/http"
	"customer_intel_backend/platform/logger"
)

// Module is the churn bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the churn module.
func NewModule(datasets *dataset.Store, log *logger.Logger) *Module {
	svc := service.New(datasets, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "churn"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts churn routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/churn/at-risk", m.handler.AtRisk)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
