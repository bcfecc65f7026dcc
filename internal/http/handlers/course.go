package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/http/response"
	"github.com/creativahub/creativahub-backend/internal/pkg/ctxutil"
	"github.com/creativahub/creativahub-backend/internal/services"
)

type CourseHandler struct {
	courseService services.CourseService
	userService   services.UserService
}

func NewCourseHandler(courseService services.CourseService, userService services.UserService) *CourseHandler {
	return &CourseHandler{courseService: courseService, userService: userService}
}

// POST /api/courses
func (ch *CourseHandler) CreateCourse(c *gin.Context) {
	var req services.CreateCourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, err := ch.courseService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

// PATCH /api/courses/:id
func (ch *CourseHandler) UpdateCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	var req services.UpdateCourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = courseID
	course, err := ch.courseService.Update(c.Request.Context(), req)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

// GET /api/courses
func (ch *CourseHandler) ListPublishedCourses(c *gin.Context) {
	courses, err := ch.courseService.GetPublishedCourses(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"courses": courses})
}

// GET /api/users/:id/courses
func (ch *CourseHandler) ListUserCourses(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	user, err := ch.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	courses, err := ch.courseService.GetUserCourses(c.Request.Context(), userID, string(user.Role))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"courses": courses})
}

// GET /api/courses/:id
func (ch *CourseHandler) GetCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	course, err := ch.courseService.GetCourseDetails(c.Request.Context(), courseID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

// POST /api/courses/:id/enroll
// body: { "student_id": "..." } (defaults to the authenticated user)
func (ch *CourseHandler) Enroll(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	var req struct {
		StudentID uuid.UUID `json:"student_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	studentID := req.StudentID
	if studentID == uuid.Nil {
		if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
			studentID = rd.UserID
		}
	}
	enrollment, err := ch.courseService.Enroll(c.Request.Context(), courseID, studentID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"enrollment": enrollment})
}
