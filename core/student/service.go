package student

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("student record not found")
	ErrIDExists = errors.New("a student record with this identifier already exists")
)

type (
	Repository interface {
		CreateStudent(rec Record) (Record, error)
		QueryAllStudents() ([]Record, error)
		GetStudentByID(id string) (Record, error)
		// FilterStudents applies Search (case-insensitive match on Name,
		// Email or Course) first, then Status, in that fixed order.
		FilterStudents(filter QueryFilter) ([]Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nr NewRecord) (Record, error) {
	rec := Record{
		Name:     nr.Name,
		Email:    nr.Email,
		Course:   nr.Course,
		JoinDate: time.Now().UTC(),
		Status:   nr.Status,
	}
	return svc.repo.CreateStudent(rec)
}

func (svc *Service) Query() ([]Record, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Record, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Record, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllStudents()
	}
	return svc.repo.FilterStudents(filter)
}
