package course

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core"
)

// Status is the unified course lifecycle state. The historical mock
// datasets used two vocabularies ("ongoing/completed/not_started" on the
// student dashboard, "Active/Draft" on the admin one); statusAliases maps
// every legacy literal onto one canonical value.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusNotStarted Status = "not_started"
	StatusOngoing    Status = "ongoing"
	StatusCompleted  Status = "completed"
)

var (
	ErrUnknownStatus = errors.New("unknown course status")

	statusAliases = map[string]Status{
		"draft":       StatusDraft,
		"not_started": StatusNotStarted,
		"notstarted":  StatusNotStarted,
		"ongoing":     StatusOngoing,
		"active":      StatusOngoing,
		"completed":   StatusCompleted,
	}
)

// ParseStatus normalizes a raw status literal into its canonical Status.
func ParseStatus(s string) (Status, error) {
	if status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status, nil
	}
	return "", errors.Wrap(ErrUnknownStatus, s)
}

// Assignment statuses
const (
	AssignmentPending   = "pending"
	AssignmentSubmitted = "submitted"
)

type Assignment struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
	Status  string    `json:"status"` // pending | submitted
}

type Course struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Instructor       string       `json:"instructor"`
	Status           Status       `json:"status"`
	Progress         int          `json:"progress"` // 0 - 100
	Modules          int          `json:"modules"`
	CompletedModules int          `json:"completed_modules"`
	Enrolled         int          `json:"enrolled"`
	Assignments      []Assignment `json:"assignments"`
	Materials        []string     `json:"materials"`
	NextSession      time.Time    `json:"next_session"`
	CreatedAt        time.Time    `json:"created_at"` // UTC
	UpdatedAt        time.Time    `json:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
// A new course always starts with no enrollment and no progress.
type NewCourse struct {
	Title       string    `json:"title" validate:"required"`
	Instructor  string    `json:"instructor" validate:"required"`
	Status      string    `json:"status"`
	Modules     int       `json:"modules" validate:"min=0"`
	Materials   []string  `json:"materials"`
	NextSession time.Time `json:"next_session"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Instructor = core.CleanString(nc.Instructor)
	if nc.Status == "" {
		nc.Status = string(StatusDraft)
	}

	if err := validate.Struct(nc); err != nil {
		return err
	}
	if _, err := ParseStatus(nc.Status); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "status", Error: ErrUnknownStatus.Error()})
	}
	return nil
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
