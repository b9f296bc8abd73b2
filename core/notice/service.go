package notice

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrIDExists = errors.New("a notice with this identifier already exists")
)

type (
	Repository interface {
		AppendNotification(n Notification) (Notification, error)
		QueryAllNotifications() ([]Notification, error)
		AppendAnnouncement(a Announcement) (Announcement, error)
		QueryAllAnnouncements() ([]Announcement, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Push appends a notification to the feed.
func (svc *Service) Push(message, typ string) (Notification, error) {
	n := Notification{
		Message: message,
		Type:    typ,
		Time:    time.Now().UTC(),
	}
	return svc.repo.AppendNotification(n)
}

func (svc *Service) Notifications() ([]Notification, error) {
	return svc.repo.QueryAllNotifications()
}

// Announce publishes an announcement to the volunteer feed.
func (svc *Service) Announce(na NewAnnouncement) (Announcement, error) {
	a := Announcement{
		Title:   na.Title,
		Content: na.Content,
		Author:  na.Author,
		Date:    time.Now().UTC(),
	}
	return svc.repo.AppendAnnouncement(a)
}

func (svc *Service) Announcements() ([]Announcement, error) {
	return svc.repo.QueryAllAnnouncements()
}
