package tests

import (
	"fmt"
	"os"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/dikshafoundation/diksha/apps/api/echo"
	"github.com/dikshafoundation/diksha/core"
	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/user"
	"github.com/dikshafoundation/diksha/core/volunteer"
	emailsvc "github.com/dikshafoundation/diksha/services/email"
	dummydb "github.com/dikshafoundation/diksha/storage/database/dummy"
)

var (
	db      *dummydb.DB
	app     Server
	conf    *core.Config
	usrRepo user.Repository

	errMissingToken  = httpErr{Error: "missing or malformed jwt"}
	errPermDenied    = httpErr{Error: "permission denied"}
	errNotAuthorized = httpErr{Error: "user not authenticated"}
)

func TestMain(m *testing.M) {
	conf = core.NewConfig()
	conf.Debug = false
	conf.TestMode = true

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	var err error
	db, err = dummydb.Open()
	if err != nil {
		fmt.Printf("dummydb.Open(): %v", err)
		os.Exit(1)
	}
	usrRepo = dummydb.NewUserRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	usrSvc := user.NewServiceMock(usrRepo, mailSvc, conf)
	noticeSvc := notice.NewService(dummydb.NewNoticeRepository(db))

	// set up server
	app = NewServer(ServerDeps{
		Conf:         conf,
		Logger:       nopLogger{},
		UserSvc:      usrSvc,
		CourseSvc:    course.NewService(dummydb.NewCourseRepository(db)),
		StudentSvc:   student.NewService(dummydb.NewStudentRepository(db)),
		VolunteerSvc: volunteer.NewService(dummydb.NewVolunteerRepository(db)),
		DonationSvc:  donation.NewService(dummydb.NewDonationRepository(db), noticeSvc, mailSvc, conf),
		BlogSvc:      blog.NewService(dummydb.NewPostRepository(db)),
		NoticeSvc:    noticeSvc,
		RecordsSvc:   records.NewService(dummydb.NewRecordsRepository(db)),
		Validate:     validate,
		Translator:   translator,
	})

	os.Exit(m.Run())
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}
