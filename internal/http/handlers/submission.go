package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/http/response"
	"github.com/creativahub/creativahub-backend/internal/pkg/ctxutil"
	"github.com/creativahub/creativahub-backend/internal/services"
)

type SubmissionHandler struct {
	submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// POST /api/assignments/:id/submissions
// body: { "student_id": "...", "submission_url": "...", "submission_text": "..." }
// student_id defaults to the authenticated user.
func (sh *SubmissionHandler) CreateSubmission(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assignment_id", err)
		return
	}
	var req services.CreateSubmissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.AssignmentID = assignmentID
	if req.StudentID == uuid.Nil {
		if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
			req.StudentID = rd.UserID
		}
	}
	submission, err := sh.submissionService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submission": submission})
}

// POST /api/submissions/:id/grade
func (sh *SubmissionHandler) GradeSubmission(c *gin.Context) {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_submission_id", err)
		return
	}
	var req services.GradeSubmissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.SubmissionID = submissionID
	submission, err := sh.submissionService.Grade(c.Request.Context(), req)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submission": submission})
}

// GET /api/assignments/:id/submissions
func (sh *SubmissionHandler) ListAssignmentSubmissions(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assignment_id", err)
		return
	}
	submissions, err := sh.submissionService.GetAssignmentSubmissions(c.Request.Context(), assignmentID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submissions": submissions})
}

// GET /api/students/:id/submissions
func (sh *SubmissionHandler) ListStudentSubmissions(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_student_id", err)
		return
	}
	submissions, err := sh.submissionService.GetStudentSubmissions(c.Request.Context(), studentID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submissions": submissions})
}
