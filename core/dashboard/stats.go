package dashboard

import (
	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/views"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

// StudentStats is the student dashboard's overview block. Every value is
// derived on read from the backing collections.
type StudentStats struct {
	EnrolledCourses  int `json:"enrolled_courses"`
	OngoingCourses   int `json:"ongoing_courses"`
	CompletedCourses int `json:"completed_courses"`
	CompletionRate   int `json:"completion_rate"` // mean course progress, 0 - 100
	AttendanceRate   int `json:"attendance_rate"` // 0 - 100
	Certificates     int `json:"certificates"`
	Achievements     int `json:"achievements"`
}

// BuildStudentStats derives the overview numbers from the student's
// courses, attendance history, certificates and achievements.
func BuildStudentStats(courses []course.Course, attendance []records.Attendance,
	certs []records.Certificate, achs []records.Achievement) StudentStats {

	progress := make([]int, 0, len(courses))
	for _, crs := range courses {
		progress = append(progress, crs.Progress)
	}

	return StudentStats{
		EnrolledCourses: len(courses),
		OngoingCourses: views.Count(courses, func(crs course.Course) bool {
			return crs.Status == course.StatusOngoing
		}),
		CompletedCourses: views.Count(courses, func(crs course.Course) bool {
			return crs.Status == course.StatusCompleted
		}),
		CompletionRate: views.AveragePercent(progress),
		AttendanceRate: records.AttendanceRate(attendance),
		Certificates:   len(certs),
		Achievements:   len(achs),
	}
}

// AdminStats is the admin dashboard's overview block, derived on read.
type AdminStats struct {
	TotalStudents    int     `json:"total_students"`
	ActiveStudents   int     `json:"active_students"`
	TotalCourses     int     `json:"total_courses"`
	OngoingCourses   int     `json:"ongoing_courses"`
	TotalVolunteers  int     `json:"total_volunteers"`
	ActiveVolunteers int     `json:"active_volunteers"`
	TotalDonations   float64 `json:"total_donations"`
	DonationCount    int     `json:"donation_count"`
	PublishedPosts   int     `json:"published_posts"`
}

// BuildAdminStats derives the organization-wide numbers from the full
// collections.
func BuildAdminStats(students []student.Record, courses []course.Course,
	volunteers []volunteer.Volunteer, donations []donation.Donation, posts []blog.Post) AdminStats {

	return AdminStats{
		TotalStudents: len(students),
		ActiveStudents: views.Count(students, func(rec student.Record) bool {
			return rec.Status == student.StatusActive
		}),
		TotalCourses: len(courses),
		OngoingCourses: views.Count(courses, func(crs course.Course) bool {
			return crs.Status == course.StatusOngoing
		}),
		TotalVolunteers: len(volunteers),
		ActiveVolunteers: views.Count(volunteers, func(vol volunteer.Volunteer) bool {
			return vol.Status == volunteer.StatusActive
		}),
		TotalDonations: views.Sum(donations, func(don donation.Donation) float64 { return don.Amount }),
		DonationCount:  len(donations),
		PublishedPosts: views.Count(posts, func(p blog.Post) bool {
			return p.Status == blog.StatusPublished
		}),
	}
}
