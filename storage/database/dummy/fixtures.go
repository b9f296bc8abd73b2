package dummydb

import (
	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/user"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

// Fixtures seeds the database with initial collections. Rows without an
// identifier get one assigned on load; duplicate identifiers within a
// collection abort the load.
type Fixtures struct {
	Users         []user.User
	Courses       []course.Course
	Students      []student.Record
	Volunteers    []volunteer.Volunteer
	Donations     []donation.Donation
	Posts         []blog.Post
	Notifications []notice.Notification
	Announcements []notice.Announcement
	Certificates  []records.Certificate
	Achievements  []records.Achievement
	Events        []records.Event
	Attendance    []records.Attendance
}

// Load replaces every collection with the fixture data. Collections left
// nil in the fixtures are emptied, not preserved.
func (db *DB) Load(fx Fixtures) error {
	if err := replace(db.user, fx.Users, func(u *user.User) *string { return &u.ID }, user.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.course, fx.Courses, func(c *course.Course) *string { return &c.ID }, course.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.student, fx.Students, func(r *student.Record) *string { return &r.ID }, student.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.volunteer, fx.Volunteers, func(v *volunteer.Volunteer) *string { return &v.ID }, volunteer.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.donation, fx.Donations, func(d *donation.Donation) *string { return &d.ID }, donation.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.post, fx.Posts, func(p *blog.Post) *string { return &p.ID }, blog.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.notification, fx.Notifications, func(n *notice.Notification) *string { return &n.ID }, notice.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.announcement, fx.Announcements, func(a *notice.Announcement) *string { return &a.ID }, notice.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.certificate, fx.Certificates, func(c *records.Certificate) *string { return &c.ID }, records.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.achievement, fx.Achievements, func(a *records.Achievement) *string { return &a.ID }, records.ErrIDExists); err != nil {
		return err
	}
	if err := replace(db.event, fx.Events, func(e *records.Event) *string { return &e.ID }, records.ErrIDExists); err != nil {
		return err
	}
	return replace(db.attendance, fx.Attendance, func(a *records.Attendance) *string { return &a.ID }, records.ErrIDExists)
}
