// Package student holds the admin dashboard's roster records. These are
// deliberately distinct from the credentialed user.User accounts: the
// roster tracks enrollment data, not logins.
package student

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dikshafoundation/diksha/core"
)

// Statuses
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCompleted = "completed"
)

type Record struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Course   string    `json:"course"`
	JoinDate time.Time `json:"join_date"`
	Status   string    `json:"status"` // active | inactive | completed
}

// NewRecord contains information needed to enroll a new student.
type NewRecord struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Course string `json:"course" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive completed"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	nr.Name = core.CleanString(nr.Name)
	nr.Email = core.CleanString(nr.Email, true /* lower */)
	nr.Course = core.CleanString(nr.Course)
	if nr.Status == "" {
		nr.Status = StatusActive
	}
	return validate.Struct(nr)
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && (qf.Status == "" || qf.Status == "all")
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}
