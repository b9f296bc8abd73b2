package dashboard

import (
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dikshafoundation/diksha/core"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

type courseRepoFake struct {
	courses []course.Course
}

func (repo *courseRepoFake) CreateCourse(crs course.Course) (course.Course, error) {
	crs.ID = strconv.Itoa(len(repo.courses) + 1)
	repo.courses = append(repo.courses, crs)
	return crs, nil
}
func (repo *courseRepoFake) QueryAllCourses() ([]course.Course, error) { return repo.courses, nil }
func (repo *courseRepoFake) GetCourseByID(id string) (course.Course, error) {
	for _, crs := range repo.courses {
		if crs.ID == id {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}
func (repo *courseRepoFake) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	return repo.courses, nil
}
func (repo *courseRepoFake) SubmitAssignment(courseID, assignmentID string) (course.Course, error) {
	return course.Course{}, course.ErrNotFound
}

type volunteerRepoFake struct {
	volunteers []volunteer.Volunteer
}

func (repo *volunteerRepoFake) CreateVolunteer(vol volunteer.Volunteer) (volunteer.Volunteer, error) {
	vol.ID = strconv.Itoa(len(repo.volunteers) + 1)
	repo.volunteers = append(repo.volunteers, vol)
	return vol, nil
}
func (repo *volunteerRepoFake) QueryAllVolunteers() ([]volunteer.Volunteer, error) {
	return repo.volunteers, nil
}
func (repo *volunteerRepoFake) GetVolunteerByID(id string) (volunteer.Volunteer, error) {
	return volunteer.Volunteer{}, volunteer.ErrNotFound
}
func (repo *volunteerRepoFake) FilterVolunteers(filter volunteer.QueryFilter) ([]volunteer.Volunteer, error) {
	return repo.volunteers, nil
}

func newTestController(t *testing.T) (*FormController, *courseRepoFake, *volunteerRepoFake) {
	t.Helper()

	validate := validator.New()
	courseRepo := &courseRepoFake{}
	volunteerRepo := &volunteerRepoFake{}
	fc := NewFormController(
		CourseFormSpec(course.NewService(courseRepo), validate),
		VolunteerFormSpec(volunteer.NewService(volunteerRepo), validate),
	)
	return fc, courseRepo, volunteerRepo
}

func TestFormControllerSubmit(t *testing.T) {
	fc, courseRepo, _ := newTestController(t)

	require.NoError(t, fc.Open(FormCourse))
	require.NoError(t, fc.SetField("title", "Spoken English"))
	require.NoError(t, fc.SetField("instructor", "Anjali Mehta"))
	require.NoError(t, fc.SetField("status", "active"))
	require.NoError(t, fc.SetField("modules", "12"))

	require.NoError(t, fc.Submit())

	// exactly one record appended, form closed
	require.Len(t, courseRepo.courses, 1)
	_, open := fc.OpenForm()
	assert.False(t, open)

	crs := courseRepo.courses[0]
	assert.Equal(t, "Spoken English", crs.Title)
	assert.Equal(t, "Anjali Mehta", crs.Instructor)
	assert.Equal(t, course.StatusOngoing, crs.Status)
	assert.Equal(t, 12, crs.Modules)

	// a new course never inherits enrollment or progress
	assert.Equal(t, 0, crs.Enrolled)
	assert.Equal(t, 0, crs.Progress)
	assert.Equal(t, 0, crs.CompletedModules)
}

func TestFormControllerRequiredFields(t *testing.T) {
	fc, courseRepo, _ := newTestController(t)

	require.NoError(t, fc.Open(FormCourse))
	require.NoError(t, fc.SetField("title", "  ")) // whitespace does not count

	err := fc.Submit()
	require.Error(t, err)
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"title", "instructor"},
		[]string{vErr.Fields[0].Field, vErr.Fields[1].Field},
	)

	// nothing stored, form still open with its draft intact
	assert.Empty(t, courseRepo.courses)
	name, open := fc.OpenForm()
	require.True(t, open)
	assert.Equal(t, FormCourse, name)
	got, _ := fc.Field("title")
	assert.Equal(t, "  ", got)
}

func TestFormControllerOpenReplaces(t *testing.T) {
	fc, _, _ := newTestController(t)

	require.NoError(t, fc.Open(FormCourse))
	require.NoError(t, fc.SetField("title", "Yoga Basics"))

	// opening another form discards the first draft
	require.NoError(t, fc.Open(FormVolunteer))
	name, open := fc.OpenForm()
	require.True(t, open)
	assert.Equal(t, FormVolunteer, name)
	_, ok := fc.Field("title")
	assert.False(t, ok)

	// reopening the same form resets its draft
	require.NoError(t, fc.Open(FormVolunteer))
	require.NoError(t, fc.SetField("name", "Ravi"))
	require.NoError(t, fc.Open(FormVolunteer))
	got, ok := fc.Field("name")
	require.True(t, ok)
	assert.Equal(t, "", got)
}

func TestFormControllerCancel(t *testing.T) {
	fc, courseRepo, _ := newTestController(t)

	require.NoError(t, fc.Open(FormCourse))
	require.NoError(t, fc.SetField("title", "Computer Literacy"))
	require.NoError(t, fc.SetField("instructor", "Suresh Kumar"))

	fc.Cancel()

	assert.Empty(t, courseRepo.courses)
	_, open := fc.OpenForm()
	assert.False(t, open)
	assert.Equal(t, ErrNoOpenForm, fc.Submit())
}

func TestFormControllerFieldHandling(t *testing.T) {
	fc, _, _ := newTestController(t)

	assert.Equal(t, ErrNoOpenForm, fc.SetField("title", "x"))
	assert.Equal(t, ErrUnknownForm, errors.Cause(fc.Open("payroll")))

	require.NoError(t, fc.Open(FormCourse))
	assert.Equal(t, ErrUnknownField, errors.Cause(fc.SetField("fees", "10")))

	// numeric coercion falls back to 0 instead of failing the edit
	require.NoError(t, fc.SetField("modules", "twelve"))
	got, _ := fc.Field("modules")
	assert.Equal(t, float64(0), got)

	require.NoError(t, fc.SetField("modules", " 8 "))
	got, _ = fc.Field("modules")
	assert.Equal(t, float64(8), got)
}
