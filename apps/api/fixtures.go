package main

import (
	"time"

	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/volunteer"
	dummydb "github.com/dikshafoundation/diksha/storage/database/dummy"
)

// demoFixtures seeds the in-memory store with the demo dataset the
// dashboards ship with. Identifiers are assigned on load.
func demoFixtures() dummydb.Fixtures {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return dummydb.Fixtures{
		Courses: []course.Course{
			{
				Title: "Spoken English", Instructor: "Anjali Mehta", Status: course.StatusOngoing,
				Progress: 65, Modules: 12, CompletedModules: 8, Enrolled: 24,
				Assignments: []course.Assignment{
					{ID: "a1", Title: "Essay: My Village", DueDate: day(2026, time.September, 15), Status: course.AssignmentPending},
					{ID: "a2", Title: "Reading Exercise 4", DueDate: day(2026, time.August, 20), Status: course.AssignmentSubmitted},
				},
				Materials:   []string{"Grammar Workbook.pdf", "Conversation Practice.mp3"},
				NextSession: day(2026, time.September, 3),
			},
			{
				Title: "Computer Basics", Instructor: "Suresh Kumar", Status: course.StatusCompleted,
				Progress: 100, Modules: 10, CompletedModules: 10, Enrolled: 18,
				Materials: []string{"Typing Drills.pdf"},
			},
			{
				Title: "Mathematics Foundation", Instructor: "Priya Nair", Status: course.StatusNotStarted,
				Modules: 15, Enrolled: 30, NextSession: day(2026, time.September, 10),
			},
			{
				Title: "Art & Craft", Instructor: "Meena Gupta", Status: course.StatusDraft,
				Modules: 8,
			},
		},
		Students: []student.Record{
			{Name: "Asha Kumari", Email: "asha@example.org", Course: "Spoken English", JoinDate: day(2026, time.January, 12), Status: student.StatusActive},
			{Name: "Vikram Singh", Email: "vikram@example.org", Course: "Computer Basics", JoinDate: day(2025, time.November, 3), Status: student.StatusCompleted},
			{Name: "Meena Devi", Email: "meena@example.org", Course: "Mathematics Foundation", JoinDate: day(2026, time.February, 20), Status: student.StatusActive},
			{Name: "Rahul Kumar", Email: "rahul@example.org", Course: "Spoken English", JoinDate: day(2025, time.August, 15), Status: student.StatusInactive},
		},
		Volunteers: []volunteer.Volunteer{
			{Name: "Ravi Shankar", Role: "English Tutor", Hours: 120, Rating: 4.8, Status: volunteer.StatusActive, JoinedAt: day(2025, time.June, 1)},
			{Name: "Priya Sharma", Role: "Event Coordinator", Hours: 45, Rating: 4.5, Status: volunteer.StatusActive, JoinedAt: day(2026, time.January, 10)},
			{Name: "Amit Verma", Role: "Computer Instructor", Status: volunteer.StatusPending, JoinedAt: day(2026, time.August, 25)},
		},
		Donations: []donation.Donation{
			{Donor: "Tata Trust", Amount: 50000, Purpose: "Library Books", Date: day(2026, time.July, 5)},
			{Donor: "Anonymous", Amount: 1500.50, Purpose: "School Supplies", Date: day(2026, time.August, 12)},
			{Donor: "Ramesh Agarwal", Amount: 10000, Purpose: "Computer Lab", Date: day(2026, time.August, 28)},
		},
		Posts: []blog.Post{
			{Title: "A Year of Learning in Patna", Author: "Anjali Mehta", Category: blog.CategoryBlog, Content: "This year our Spoken English batch...", Status: blog.StatusPublished, Date: day(2026, time.June, 30)},
			{Title: "NCERT Study Guides", Author: "Suresh Kumar", Category: blog.CategoryResource, Content: "Curated links to free study material...", Status: blog.StatusPublished, Date: day(2026, time.July, 14)},
			{Title: "Volunteer Stories (draft)", Author: "Priya Sharma", Category: blog.CategoryBlog, Content: "...", Status: blog.StatusDraft, Date: day(2026, time.August, 20)},
		},
		Notifications: []notice.Notification{
			{Message: "New study material added to Spoken English", Type: notice.TypeCourse, Time: day(2026, time.August, 29)},
			{Message: "New donation of 10000.00 from Ramesh Agarwal for Computer Lab", Type: notice.TypeDonation, Time: day(2026, time.August, 28)},
		},
		Announcements: []notice.Announcement{
			{Title: "Annual Day Preparations", Content: "Rehearsals start next week; sign up at the office.", Author: "Meena Gupta", Date: day(2026, time.August, 22)},
		},
		Certificates: []records.Certificate{
			{Title: "Certificate of Completion", Course: "Computer Basics", IssuedAt: day(2026, time.May, 30)},
		},
		Achievements: []records.Achievement{
			{Title: "Perfect Attendance", Description: "Attended every session in July", EarnedAt: day(2026, time.August, 1)},
			{Title: "Fast Learner", Description: "Completed 3 modules ahead of schedule", EarnedAt: day(2026, time.June, 15)},
		},
		Events: []records.Event{
			{Title: "Annual Day", Location: "Community Hall, Patna", Date: day(2026, time.September, 20)},
			{Title: "Parents Meet", Location: "Centre 2", Date: day(2026, time.September, 7)},
		},
		Attendance: []records.Attendance{
			{Date: day(2026, time.August, 25), Present: true},
			{Date: day(2026, time.August, 26), Present: true},
			{Date: day(2026, time.August, 27), Present: false},
			{Date: day(2026, time.August, 28), Present: true},
		},
	}
}
