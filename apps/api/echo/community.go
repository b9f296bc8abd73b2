package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

type communityDeps struct {
	studentSvc   *student.Service
	volunteerSvc *volunteer.Service
	donationSvc  *donation.Service
	noticeSvc    *notice.Service
	validate     *validator.Validate
}

// communityApi groups the admin-facing community collections: the student
// roster, volunteers, donations and announcements.
type communityApi struct {
	deps communityDeps
}

func registerCommunityAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps communityDeps) {
	api := communityApi{deps: deps}

	sg := g.Group("/students", jwt, adminMiddleware())
	sg.GET("", api.queryStudents)
	sg.POST("", api.createStudent)
	sg.GET("/:id", api.retrieveStudent)

	vg := g.Group("/volunteers", jwt)
	vg.GET("", api.queryVolunteers)
	vg.POST("", api.createVolunteer)

	dg := g.Group("/donations", jwt)
	dg.GET("", api.queryDonations, adminMiddleware())
	dg.POST("", api.createDonation, adminMiddleware())

	ag := g.Group("/announcements", jwt)
	ag.GET("", api.queryAnnouncements)
	ag.POST("", api.createAnnouncement, adminMiddleware())
}

// Students

func (api *communityApi) queryStudents(ctx echo.Context) error {
	filter := new(student.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []student.Record{})
	}
	filter.Clean()

	students, err := api.deps.studentSvc.Filter(*filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Record{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *communityApi) createStudent(ctx echo.Context) error {
	var data student.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	rec, err := api.deps.studentSvc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating student record")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *communityApi) retrieveStudent(ctx echo.Context) error {
	rec, err := api.deps.studentSvc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

// Volunteers

func (api *communityApi) queryVolunteers(ctx echo.Context) error {
	filter := new(volunteer.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []volunteer.Volunteer{})
	}
	filter.Clean()

	volunteers, err := api.deps.volunteerSvc.Filter(*filter)
	if err != nil {
		return errors.Wrap(err, "querying volunteers")
	}
	if volunteers == nil {
		volunteers = []volunteer.Volunteer{}
	}
	return ctx.JSON(http.StatusOK, volunteers)
}

func (api *communityApi) createVolunteer(ctx echo.Context) error {
	var data volunteer.NewVolunteer
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewVolunteer")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	vol, err := api.deps.volunteerSvc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating volunteer")
	}
	return ctx.JSON(http.StatusCreated, vol)
}

// Donations

func (api *communityApi) queryDonations(ctx echo.Context) error {
	filter := new(donation.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []donation.Donation{})
	}
	filter.Clean()

	donations, err := api.deps.donationSvc.Filter(*filter)
	if err != nil {
		return errors.Wrap(err, "querying donations")
	}
	if donations == nil {
		donations = []donation.Donation{}
	}
	return ctx.JSON(http.StatusOK, donations)
}

func (api *communityApi) createDonation(ctx echo.Context) error {
	var data donation.NewDonation
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDonation")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	don, err := api.deps.donationSvc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating donation")
	}
	return ctx.JSON(http.StatusCreated, don)
}

// Announcements

func (api *communityApi) queryAnnouncements(ctx echo.Context) error {
	announcements, err := api.deps.noticeSvc.Announcements()
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	if announcements == nil {
		announcements = []notice.Announcement{}
	}
	return ctx.JSON(http.StatusOK, announcements)
}

func (api *communityApi) createAnnouncement(ctx echo.Context) error {
	var data notice.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	ann, err := api.deps.noticeSvc.Announce(data)
	if err != nil {
		return errors.Wrap(err, "creating announcement")
	}
	return ctx.JSON(http.StatusCreated, ann)
}
