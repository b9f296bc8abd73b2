package dummydb

import (
	"time"

	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/views"
)

type courseRepository struct {
	db *table[course.Course]
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func courseID(c *course.Course) *string { return &c.ID }

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	return insert(repo.db, crs, courseID, course.ErrIDExists)
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	return repo.db.all(), nil
}

func (repo *courseRepository) GetCourseByID(id string) (course.Course, error) {
	for _, crs := range repo.db.all() {
		if crs.ID == id {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	courses := repo.db.all()

	// search narrows first, status second
	courses = views.FilterBySearch(courses, filter.Search, func(crs course.Course) []string {
		return []string{crs.Title, crs.Instructor}
	})
	courses = views.FilterByStatus(courses, filter.Status, func(crs course.Course) string {
		return string(crs.Status)
	})
	return courses, nil
}

func (repo *courseRepository) SubmitAssignment(courseID, assignmentID string) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.rows {
		crs := &repo.db.rows[i]
		if crs.ID != courseID {
			continue
		}
		for j := range crs.Assignments {
			asg := &crs.Assignments[j]
			if asg.ID != assignmentID {
				continue
			}
			if asg.Status == course.AssignmentSubmitted {
				return course.Course{}, course.ErrAlreadySubmitted
			}
			asg.Status = course.AssignmentSubmitted
			crs.UpdatedAt = time.Now().UTC()
			return *crs, nil
		}
		return course.Course{}, course.ErrAssignmentNotFound
	}
	return course.Course{}, course.ErrNotFound
}
