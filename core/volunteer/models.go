package volunteer

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dikshafoundation/diksha/core"
)

// Statuses
const (
	StatusActive  = "active"
	StatusPending = "pending"
)

type Volunteer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Hours    int       `json:"hours"`
	Rating   float64   `json:"rating"`    // 0 - 5
	Status   string    `json:"status"`    // active | pending
	JoinedAt time.Time `json:"joined_at"` // UTC
}

// NewVolunteer contains information needed to register a new Volunteer.
// Registrations start pending until an admin approves them.
type NewVolunteer struct {
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role" validate:"required"`
	Hours int    `json:"hours" validate:"min=0"`
}

func (nv *NewVolunteer) Validate(validate *validator.Validate) error {
	nv.Name = core.CleanString(nv.Name)
	nv.Role = core.CleanString(nv.Role)
	return validate.Struct(nv)
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
