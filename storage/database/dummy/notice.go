package dummydb

import (
	"github.com/dikshafoundation/diksha/core/notice"
)

// noticeRepository backs the append-only notification and announcement
// feeds. There is no update or delete path.
type noticeRepository struct {
	notifications *table[notice.Notification]
	announcements *table[notice.Announcement]
}

var _ notice.Repository = (*noticeRepository)(nil) // interface compliance check

func NewNoticeRepository(db *DB) notice.Repository {
	return &noticeRepository{
		notifications: db.notification,
		announcements: db.announcement,
	}
}

func notificationID(n *notice.Notification) *string { return &n.ID }
func announcementID(a *notice.Announcement) *string { return &a.ID }

func (repo *noticeRepository) AppendNotification(n notice.Notification) (notice.Notification, error) {
	return insert(repo.notifications, n, notificationID, notice.ErrIDExists)
}

func (repo *noticeRepository) QueryAllNotifications() ([]notice.Notification, error) {
	return repo.notifications.all(), nil
}

func (repo *noticeRepository) AppendAnnouncement(a notice.Announcement) (notice.Announcement, error) {
	return insert(repo.announcements, a, announcementID, notice.ErrIDExists)
}

func (repo *noticeRepository) QueryAllAnnouncements() ([]notice.Announcement, error) {
	return repo.announcements.all(), nil
}
