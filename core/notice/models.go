// Package notice holds the append-only feeds: dashboard notifications
// and the volunteer page announcements. Records are never updated or
// deleted once pushed.
package notice

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dikshafoundation/diksha/core"
)

// Notification types
const (
	TypeInfo     = "info"
	TypeDonation = "donation"
	TypeCourse   = "course"
)

type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Time    time.Time `json:"time"` // UTC
}

type Announcement struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"` // UTC
	Author  string    `json:"author"`
}

// NewAnnouncement contains information needed to publish an Announcement.
type NewAnnouncement struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

func (na *NewAnnouncement) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	na.Author = core.CleanString(na.Author)
	return validate.Struct(na)
}
