package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type HealthResponse struct {
	Status  string `json:"status" doc:"Service status"`
	Version string `json:"version" doc:"API version"`
}

type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns service health",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: HealthResponse{Status: "ok", Version: Version}}, nil
}
