package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/http/response"
	"github.com/creativahub/creativahub-backend/internal/pkg/ctxutil"
	"github.com/creativahub/creativahub-backend/internal/services"
)

type PortfolioHandler struct {
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// POST /api/portfolio
// student_id defaults to the authenticated user.
func (ph *PortfolioHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.StudentID == uuid.Nil {
		if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
			req.StudentID = rd.UserID
		}
	}
	project, err := ph.portfolioService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"project": project})
}

// GET /api/students/:id/portfolio
func (ph *PortfolioHandler) ListStudentPortfolio(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_student_id", err)
		return
	}
	projects, err := ph.portfolioService.GetStudentPortfolio(c.Request.Context(), studentID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"projects": projects})
}

// GET /api/portfolio/public
func (ph *PortfolioHandler) ListPublicProjects(c *gin.Context) {
	projects, err := ph.portfolioService.GetPublicProjects(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"projects": projects})
}
