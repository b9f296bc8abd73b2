package course

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound           = errors.New("course not found")
	ErrIDExists           = errors.New("a course with this identifier already exists")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAlreadySubmitted   = errors.New("assignment already submitted")
)

type (
	Repository interface {
		CreateCourse(crs Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		// FilterCourses applies Search (case-insensitive match on Title or
		// Instructor) first, then Status, in that fixed order.
		FilterCourses(filter QueryFilter) ([]Course, error)
		// SubmitAssignment flips one assignment from pending to submitted;
		// the only in-place course mutation.
		SubmitAssignment(courseID, assignmentID string) (Course, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	status, err := ParseStatus(nc.Status)
	if err != nil {
		return Course{}, err
	}

	now := time.Now().UTC()
	crs := Course{
		Title:       nc.Title,
		Instructor:  nc.Instructor,
		Status:      status,
		Modules:     nc.Modules,
		Materials:   nc.Materials,
		NextSession: nc.NextSession,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateCourse(crs)
}

func (svc *Service) Query() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Course, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllCourses()
	}
	return svc.repo.FilterCourses(filter)
}

func (svc *Service) SubmitAssignment(courseID, assignmentID string) (Course, error) {
	return svc.repo.SubmitAssignment(courseID, assignmentID)
}
