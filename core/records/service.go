package records

import (
	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core/views"
)

var (
	// errors
	ErrIDExists = errors.New("a record with this identifier already exists")
)

type (
	Repository interface {
		QueryAllCertificates() ([]Certificate, error)
		QueryAllAchievements() ([]Achievement, error)
		QueryAllEvents() ([]Event, error)
		QueryAllAttendance() ([]Attendance, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Certificates() ([]Certificate, error) {
	return svc.repo.QueryAllCertificates()
}

func (svc *Service) Achievements() ([]Achievement, error) {
	return svc.repo.QueryAllAchievements()
}

func (svc *Service) Events() ([]Event, error) {
	return svc.repo.QueryAllEvents()
}

func (svc *Service) Attendance() ([]Attendance, error) {
	return svc.repo.QueryAllAttendance()
}

// AttendanceRate is the share of sessions attended, as a rounded percent.
// An empty attendance list yields 0, never an error.
func AttendanceRate(records []Attendance) int {
	present := views.Count(records, func(a Attendance) bool { return a.Present })
	return views.Percent(present, len(records))
}
