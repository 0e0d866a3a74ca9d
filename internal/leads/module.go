// Package leads provides the lead capture bounded context module.
package leads

import (
	"customer_intel_backend/internal/dataset"
	apphttp "customer_intel_backend/internal/http"
	"customer_intel_backend/internal/leads/handler"
	"customer_intel_backend/internal/leads/repository"
	"customer_intel_backend/internal/leads/service"
	"customer_intel_backend/platform/logger"
	"customer_intel_backend/platform/predictor"
	"customer_intel_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the leads module. The predictor client
// may be nil when no external prediction service is configured.
func NewModule(repo repository.Repository, datasets *dataset.Store, pred *predictor.Client, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, datasets, pred, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/leads", m.handler.Create)
	ctx.V1.GET("/leads", m.handler.List)
	ctx.V1.POST("/predict/lead-quality", m.handler.Predict)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
