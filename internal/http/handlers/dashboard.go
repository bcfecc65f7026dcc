package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/http/response"
	"github.com/creativahub/creativahub-backend/internal/pkg/ctxutil"
	"github.com/creativahub/creativahub-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /api/dashboard
func (dh *DashboardHandler) GetDashboard(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
		return
	}
	data, err := dh.dashboardService.GetDashboardData(c.Request.Context(), rd.UserID, types.Role(rd.Role))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, data)
}
