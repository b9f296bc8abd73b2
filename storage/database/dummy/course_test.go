package dummydb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dikshafoundation/diksha/core/course"
)

func newCourseRepo(t *testing.T, fx Fixtures) course.Repository {
	t.Helper()

	db, err := Open()
	require.NoError(t, err)
	require.NoError(t, db.Load(fx))
	return NewCourseRepository(db)
}

func TestCourseRepositoryCreate(t *testing.T) {
	repo := newCourseRepo(t, Fixtures{})

	crs1, err := repo.CreateCourse(course.Course{Title: "Spoken English", Status: course.StatusOngoing})
	require.NoError(t, err)
	assert.NotEmpty(t, crs1.ID) // identifier assigned on create

	crs2, err := repo.CreateCourse(course.Course{Title: "Mathematics", Status: course.StatusDraft})
	require.NoError(t, err)
	assert.NotEqual(t, crs1.ID, crs2.ID)

	// a taken identifier is rejected
	_, err = repo.CreateCourse(course.Course{ID: crs1.ID, Title: "Duplicate"})
	assert.Equal(t, course.ErrIDExists, err)

	courses, err := repo.QueryAllCourses()
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Spoken English", courses[0].Title) // insertion order preserved
	assert.Equal(t, "Mathematics", courses[1].Title)
}

func TestCourseRepositoryFilter(t *testing.T) {
	repo := newCourseRepo(t, Fixtures{
		Courses: []course.Course{
			{ID: "1", Title: "Spoken English", Instructor: "Anjali Mehta", Status: course.StatusOngoing},
			{ID: "2", Title: "Mathematics", Instructor: "Suresh Kumar", Status: course.StatusCompleted},
			{ID: "3", Title: "English Literature", Instructor: "Anjali Mehta", Status: course.StatusDraft},
			{ID: "4", Title: "Computer Basics", Instructor: "Priya Nair", Status: course.StatusOngoing},
		},
	})

	tests := []struct {
		name    string
		filter  course.QueryFilter
		wantIDs []string
	}{
		{name: "no filter returns everything in order", wantIDs: []string{"1", "2", "3", "4"}},
		{name: "search is case-insensitive", filter: course.QueryFilter{Search: "english"}, wantIDs: []string{"1", "3"}},
		{name: "search matches instructor", filter: course.QueryFilter{Search: "anjali"}, wantIDs: []string{"1", "3"}},
		{name: "status only", filter: course.QueryFilter{Status: "ongoing"}, wantIDs: []string{"1", "4"}},
		{name: "status all matches everything", filter: course.QueryFilter{Status: "all"}, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "search then status", filter: course.QueryFilter{Search: "english", Status: "ongoing"}, wantIDs: []string{"1"}},
		{name: "no match", filter: course.QueryFilter{Search: "physics"}, wantIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses, err := repo.FilterCourses(tt.filter)
			require.NoError(t, err)

			var ids []string
			for _, crs := range courses {
				ids = append(ids, crs.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCourseRepositorySubmitAssignment(t *testing.T) {
	due := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	repo := newCourseRepo(t, Fixtures{
		Courses: []course.Course{
			{ID: "1", Title: "Spoken English", Status: course.StatusOngoing, Assignments: []course.Assignment{
				{ID: "a1", Title: "Essay", DueDate: due, Status: course.AssignmentPending},
			}},
		},
	})

	crs, err := repo.SubmitAssignment("1", "a1")
	require.NoError(t, err)
	assert.Equal(t, course.AssignmentSubmitted, crs.Assignments[0].Status)

	// resubmitting is rejected
	_, err = repo.SubmitAssignment("1", "a1")
	assert.Equal(t, course.ErrAlreadySubmitted, err)

	_, err = repo.SubmitAssignment("1", "nope")
	assert.Equal(t, course.ErrAssignmentNotFound, err)

	_, err = repo.SubmitAssignment("nope", "a1")
	assert.Equal(t, course.ErrNotFound, err)
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	err = db.Load(Fixtures{
		Courses: []course.Course{{ID: "1"}, {ID: "1"}},
	})
	assert.Equal(t, course.ErrIDExists, err)
}
