package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/dikshafoundation/diksha/core"
	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/user"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

type (
	ServerDeps struct {
		Conf         *core.Config
		Logger       core.Logger
		UserSvc      user.Service
		CourseSvc    *course.Service
		StudentSvc   *student.Service
		VolunteerSvc *volunteer.Service
		DonationSvc  *donation.Service
		BlogSvc      *blog.Service
		NoticeSvc    *notice.Service
		RecordsSvc   *records.Service
		Validate     *validator.Validate
		Translator   ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf
	initJWTConfig(conf)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.deps.UserSvc, s.deps.Validate, s.deps.Translator)
	registerCourseAPI(v1, jwt, s.deps.CourseSvc, s.deps.Validate)
	registerCommunityAPI(v1, jwt, communityDeps{
		studentSvc:   s.deps.StudentSvc,
		volunteerSvc: s.deps.VolunteerSvc,
		donationSvc:  s.deps.DonationSvc,
		noticeSvc:    s.deps.NoticeSvc,
		validate:     s.deps.Validate,
	})
	registerBlogAPI(v1, jwt, s.deps.BlogSvc, s.deps.Validate)
	registerDashboardAPI(v1, jwt, dashboardDeps{
		courseSvc:    s.deps.CourseSvc,
		studentSvc:   s.deps.StudentSvc,
		volunteerSvc: s.deps.VolunteerSvc,
		donationSvc:  s.deps.DonationSvc,
		blogSvc:      s.deps.BlogSvc,
		noticeSvc:    s.deps.NoticeSvc,
		recordsSvc:   s.deps.RecordsSvc,
	})
}

func (s *server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Addr); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// signalShutdown lets request handlers trigger a graceful shutdown when an
// unrecoverable error is caught.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Diksha Foundation API!")
}
