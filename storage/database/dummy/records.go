package dummydb

import (
	"github.com/dikshafoundation/diksha/core/records"
)

// recordsRepository serves the display-only collections. They are seeded
// through fixtures and only ever read back.
type recordsRepository struct {
	certificates *table[records.Certificate]
	achievements *table[records.Achievement]
	events       *table[records.Event]
	attendance   *table[records.Attendance]
}

var _ records.Repository = (*recordsRepository)(nil) // interface compliance check

func NewRecordsRepository(db *DB) records.Repository {
	return &recordsRepository{
		certificates: db.certificate,
		achievements: db.achievement,
		events:       db.event,
		attendance:   db.attendance,
	}
}

func (repo *recordsRepository) QueryAllCertificates() ([]records.Certificate, error) {
	return repo.certificates.all(), nil
}

func (repo *recordsRepository) QueryAllAchievements() ([]records.Achievement, error) {
	return repo.achievements.all(), nil
}

func (repo *recordsRepository) QueryAllEvents() ([]records.Event, error) {
	return repo.events.all(), nil
}

func (repo *recordsRepository) QueryAllAttendance() ([]records.Attendance, error) {
	return repo.attendance.all(), nil
}
