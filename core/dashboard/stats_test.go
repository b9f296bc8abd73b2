package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

func TestBuildStudentStats(t *testing.T) {
	assert.Equal(t, StudentStats{}, BuildStudentStats(nil, nil, nil, nil))

	courses := []course.Course{
		{Title: "Spoken English", Status: course.StatusOngoing, Progress: 65},
		{Title: "Mathematics", Status: course.StatusOngoing, Progress: 40},
		{Title: "Computer Basics", Status: course.StatusCompleted, Progress: 100},
		{Title: "Art & Craft", Status: course.StatusNotStarted, Progress: 0},
	}
	attendance := []records.Attendance{
		{Present: true}, {Present: true}, {Present: true}, {Present: false},
	}
	certs := []records.Certificate{{Title: "Computer Basics"}}
	achs := []records.Achievement{{Title: "Perfect Week"}, {Title: "Fast Learner"}}

	got := BuildStudentStats(courses, attendance, certs, achs)
	assert.Equal(t, StudentStats{
		EnrolledCourses:  4,
		OngoingCourses:   2,
		CompletedCourses: 1,
		CompletionRate:   51, // (65+40+100+0)/4 rounded
		AttendanceRate:   75,
		Certificates:     1,
		Achievements:     2,
	}, got)
}

func TestBuildAdminStats(t *testing.T) {
	assert.Equal(t, AdminStats{}, BuildAdminStats(nil, nil, nil, nil, nil))

	students := []student.Record{
		{Name: "Asha", Status: student.StatusActive},
		{Name: "Vikram", Status: student.StatusActive},
		{Name: "Meena", Status: student.StatusInactive},
	}
	courses := []course.Course{
		{Status: course.StatusOngoing},
		{Status: course.StatusDraft},
	}
	volunteers := []volunteer.Volunteer{
		{Name: "Ravi", Status: volunteer.StatusActive},
		{Name: "Priya", Status: volunteer.StatusPending},
	}
	donations := []donation.Donation{
		{Donor: "Tata Trust", Amount: 50000},
		{Donor: "Anonymous", Amount: 1500.50},
	}
	posts := []blog.Post{
		{Status: blog.StatusPublished},
		{Status: blog.StatusDraft},
		{Status: blog.StatusPublished},
	}

	got := BuildAdminStats(students, courses, volunteers, donations, posts)
	assert.Equal(t, AdminStats{
		TotalStudents:    3,
		ActiveStudents:   2,
		TotalCourses:     2,
		OngoingCourses:   1,
		TotalVolunteers:  2,
		ActiveVolunteers: 1,
		TotalDonations:   51500.50,
		DonationCount:    2,
		PublishedPosts:   2,
	}, got)
}
