package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/dashboard"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

type dashboardDeps struct {
	courseSvc    *course.Service
	studentSvc   *student.Service
	volunteerSvc *volunteer.Service
	donationSvc  *donation.Service
	blogSvc      *blog.Service
	noticeSvc    *notice.Service
	recordsSvc   *records.Service
}

// dashboardApi serves the derived views: overview stat blocks, the
// notification feed, the display-only record lists and the BMI tool.
// Nothing here is stored; every response is computed from the backing
// collections on each request.
type dashboardApi struct {
	deps dashboardDeps
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps dashboardDeps) {
	api := dashboardApi{deps: deps}

	dg := g.Group("/dashboard", jwt)
	dg.GET("/student", api.studentDashboard, studentMiddleware())
	dg.GET("/admin", api.adminDashboard, adminMiddleware())

	g.GET("/notifications", api.queryNotifications, jwt)

	rg := g.Group("", jwt, studentMiddleware())
	rg.GET("/certificates", api.queryCertificates)
	rg.GET("/achievements", api.queryAchievements)
	rg.GET("/events", api.queryEvents)
	rg.GET("/attendance", api.queryAttendance)

	g.POST("/tools/bmi", api.computeBMI, jwt)
}

type (
	StudentDashboardResponse struct {
		Stats         dashboard.StudentStats `json:"stats"`
		Courses       []course.Course        `json:"courses"`
		Notifications []notice.Notification  `json:"notifications"`
		Events        []records.Event        `json:"events"`
	}

	AdminDashboardResponse struct {
		Stats         dashboard.AdminStats  `json:"stats"`
		Notifications []notice.Notification `json:"notifications"`
	}

	BMIRequest struct {
		Weight float64 `json:"weight"` // kg
		Height float64 `json:"height"` // cm
	}
)

func (api *dashboardApi) studentDashboard(ctx echo.Context) error {
	courses, err := api.deps.courseSvc.Query()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	attendance, err := api.deps.recordsSvc.Attendance()
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	certs, err := api.deps.recordsSvc.Certificates()
	if err != nil {
		return errors.Wrap(err, "querying certificates")
	}
	achs, err := api.deps.recordsSvc.Achievements()
	if err != nil {
		return errors.Wrap(err, "querying achievements")
	}
	events, err := api.deps.recordsSvc.Events()
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	notifications, err := api.deps.noticeSvc.Notifications()
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}

	if courses == nil {
		courses = []course.Course{}
	}
	if notifications == nil {
		notifications = []notice.Notification{}
	}
	if events == nil {
		events = []records.Event{}
	}

	return ctx.JSON(http.StatusOK, StudentDashboardResponse{
		Stats:         dashboard.BuildStudentStats(courses, attendance, certs, achs),
		Courses:       courses,
		Notifications: notifications,
		Events:        events,
	})
}

func (api *dashboardApi) adminDashboard(ctx echo.Context) error {
	students, err := api.deps.studentSvc.Query()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	courses, err := api.deps.courseSvc.Query()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	volunteers, err := api.deps.volunteerSvc.Query()
	if err != nil {
		return errors.Wrap(err, "querying volunteers")
	}
	donations, err := api.deps.donationSvc.Query()
	if err != nil {
		return errors.Wrap(err, "querying donations")
	}
	posts, err := api.deps.blogSvc.Query()
	if err != nil {
		return errors.Wrap(err, "querying posts")
	}
	notifications, err := api.deps.noticeSvc.Notifications()
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}

	if notifications == nil {
		notifications = []notice.Notification{}
	}

	return ctx.JSON(http.StatusOK, AdminDashboardResponse{
		Stats:         dashboard.BuildAdminStats(students, courses, volunteers, donations, posts),
		Notifications: notifications,
	})
}

func (api *dashboardApi) queryNotifications(ctx echo.Context) error {
	notifications, err := api.deps.noticeSvc.Notifications()
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	if notifications == nil {
		notifications = []notice.Notification{}
	}
	return ctx.JSON(http.StatusOK, notifications)
}

func (api *dashboardApi) queryCertificates(ctx echo.Context) error {
	certs, err := api.deps.recordsSvc.Certificates()
	if err != nil {
		return errors.Wrap(err, "querying certificates")
	}
	if certs == nil {
		certs = []records.Certificate{}
	}
	return ctx.JSON(http.StatusOK, certs)
}

func (api *dashboardApi) queryAchievements(ctx echo.Context) error {
	achs, err := api.deps.recordsSvc.Achievements()
	if err != nil {
		return errors.Wrap(err, "querying achievements")
	}
	if achs == nil {
		achs = []records.Achievement{}
	}
	return ctx.JSON(http.StatusOK, achs)
}

func (api *dashboardApi) queryEvents(ctx echo.Context) error {
	events, err := api.deps.recordsSvc.Events()
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	if events == nil {
		events = []records.Event{}
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *dashboardApi) queryAttendance(ctx echo.Context) error {
	attendance, err := api.deps.recordsSvc.Attendance()
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	if attendance == nil {
		attendance = []records.Attendance{}
	}
	return ctx.JSON(http.StatusOK, attendance)
}

func (api *dashboardApi) computeBMI(ctx echo.Context) error {
	var data BMIRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BMIRequest")
	}

	res, err := dashboard.BMI(data.Weight, data.Height)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}
