package domain

import (
	"github.com/creativahub/creativahub-backend/internal/domain/courses"
	"github.com/creativahub/creativahub-backend/internal/domain/portfolio"
	"github.com/creativahub/creativahub-backend/internal/domain/user"
)

type User = user.User
type Role = user.Role

const (
	RoleStudent = user.RoleStudent
	RoleTeacher = user.RoleTeacher
	RoleAdmin   = user.RoleAdmin
)

var ParseRole = user.ParseRole

type Course = courses.Course
type CourseStatus = courses.CourseStatus
type CourseEnrollment = courses.CourseEnrollment
type LearningMaterial = courses.LearningMaterial
type Assignment = courses.Assignment
type AssignmentStatus = courses.AssignmentStatus
type AssignmentSubmission = courses.AssignmentSubmission
type SubmissionStatus = courses.SubmissionStatus

const (
	CourseDraft     = courses.CourseDraft
	CoursePublished = courses.CoursePublished
	CourseArchived  = courses.CourseArchived

	AssignmentDraft     = courses.AssignmentDraft
	AssignmentPublished = courses.AssignmentPublished
	AssignmentClosed    = courses.AssignmentClosed

	SubmissionDraft     = courses.SubmissionDraft
	SubmissionSubmitted = courses.SubmissionSubmitted
	SubmissionGraded    = courses.SubmissionGraded
)

var (
	ParseCourseStatus     = courses.ParseCourseStatus
	ParseAssignmentStatus = courses.ParseAssignmentStatus
)

type PortfolioProject = portfolio.Project
