package dummydb

import (
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/views"
)

type studentRepository struct {
	db *table[student.Record]
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func studentID(r *student.Record) *string { return &r.ID }

func (repo *studentRepository) CreateStudent(rec student.Record) (student.Record, error) {
	return insert(repo.db, rec, studentID, student.ErrIDExists)
}

func (repo *studentRepository) QueryAllStudents() ([]student.Record, error) {
	return repo.db.all(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Record, error) {
	for _, rec := range repo.db.all() {
		if rec.ID == id {
			return rec, nil
		}
	}
	return student.Record{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Record, error) {
	students := repo.db.all()

	students = views.FilterBySearch(students, filter.Search, func(rec student.Record) []string {
		return []string{rec.Name, rec.Email, rec.Course}
	})
	students = views.FilterByStatus(students, filter.Status, func(rec student.Record) string {
		return rec.Status
	})
	return students, nil
}
