package dummydb

import (
	"github.com/dikshafoundation/diksha/core/views"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

type volunteerRepository struct {
	db *table[volunteer.Volunteer]
}

var _ volunteer.Repository = (*volunteerRepository)(nil) // interface compliance check

func NewVolunteerRepository(db *DB) volunteer.Repository {
	return &volunteerRepository{db: db.volunteer}
}

func volunteerID(v *volunteer.Volunteer) *string { return &v.ID }

func (repo *volunteerRepository) CreateVolunteer(vol volunteer.Volunteer) (volunteer.Volunteer, error) {
	return insert(repo.db, vol, volunteerID, volunteer.ErrIDExists)
}

func (repo *volunteerRepository) QueryAllVolunteers() ([]volunteer.Volunteer, error) {
	return repo.db.all(), nil
}

func (repo *volunteerRepository) GetVolunteerByID(id string) (volunteer.Volunteer, error) {
	for _, vol := range repo.db.all() {
		if vol.ID == id {
			return vol, nil
		}
	}
	return volunteer.Volunteer{}, volunteer.ErrNotFound
}

func (repo *volunteerRepository) FilterVolunteers(filter volunteer.QueryFilter) ([]volunteer.Volunteer, error) {
	volunteers := repo.db.all()

	volunteers = views.FilterBySearch(volunteers, filter.Search, func(vol volunteer.Volunteer) []string {
		return []string{vol.Name, vol.Role}
	})
	volunteers = views.FilterByStatus(volunteers, filter.Status, func(vol volunteer.Volunteer) string {
		return vol.Status
	})
	return volunteers, nil
}
