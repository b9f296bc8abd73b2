package dummydb

import (
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/views"
)

type donationRepository struct {
	db *table[donation.Donation]
}

var _ donation.Repository = (*donationRepository)(nil) // interface compliance check

func NewDonationRepository(db *DB) donation.Repository {
	return &donationRepository{db: db.donation}
}

func donationID(d *donation.Donation) *string { return &d.ID }

func (repo *donationRepository) CreateDonation(don donation.Donation) (donation.Donation, error) {
	return insert(repo.db, don, donationID, donation.ErrIDExists)
}

func (repo *donationRepository) QueryAllDonations() ([]donation.Donation, error) {
	return repo.db.all(), nil
}

func (repo *donationRepository) FilterDonations(filter donation.QueryFilter) ([]donation.Donation, error) {
	donations := views.FilterBySearch(repo.db.all(), filter.Search, func(don donation.Donation) []string {
		return []string{don.Donor, don.Purpose}
	})
	return donations, nil
}
