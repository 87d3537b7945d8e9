package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"savora.app/api/internal/service"
	"savora.app/api/pkg/response"
)

type DashboardHandler struct {
	service service.StatService
}

func NewDashboardHandler(service service.StatService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *DashboardHandler) GetAllLogs(c *gin.Context) {
	logs, err := h.service.Logs(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
