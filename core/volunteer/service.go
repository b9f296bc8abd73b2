package volunteer

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("volunteer not found")
	ErrIDExists = errors.New("a volunteer with this identifier already exists")
)

type (
	Repository interface {
		CreateVolunteer(vol Volunteer) (Volunteer, error)
		QueryAllVolunteers() ([]Volunteer, error)
		GetVolunteerByID(id string) (Volunteer, error)
		// FilterVolunteers applies Search (case-insensitive match on Name or
		// Role) first, then Status, in that fixed order.
		FilterVolunteers(filter QueryFilter) ([]Volunteer, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nv NewVolunteer) (Volunteer, error) {
	vol := Volunteer{
		Name:     nv.Name,
		Role:     nv.Role,
		Hours:    nv.Hours,
		Status:   StatusPending,
		JoinedAt: time.Now().UTC(),
	}
	return svc.repo.CreateVolunteer(vol)
}

func (svc *Service) Query() ([]Volunteer, error) {
	return svc.repo.QueryAllVolunteers()
}

func (svc *Service) GetByID(id string) (Volunteer, error) {
	return svc.repo.GetVolunteerByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Volunteer, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllVolunteers()
	}
	return svc.repo.FilterVolunteers(filter)
}
