package httpserver

import (
	"github.com/gin-gonic/gin"

	"smart-task-planner/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Smart Task Planner is up"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-task-planner"
)

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
	Env     string `json:"environment,omitempty"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
		Env:     srv.environment,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck godoc
// @Summary     Readiness Check
// @Description Ready once the planner and auth domains are wired.
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp "API is ready"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("ready"))
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}
