package donation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dikshafoundation/diksha/core"
)

type Donation struct {
	ID      string    `json:"id"`
	Donor   string    `json:"donor"`
	Amount  float64   `json:"amount"` // currency implicit (INR)
	Purpose string    `json:"purpose"`
	Date    time.Time `json:"date"` // UTC
}

// NewDonation contains information needed to record a Donation.
// DonorEmail is optional; when present a thank-you email is sent.
type NewDonation struct {
	Donor      string  `json:"donor" validate:"required"`
	DonorEmail string  `json:"donor_email" validate:"omitempty,email"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Purpose    string  `json:"purpose" validate:"required"`
}

func (nd *NewDonation) Validate(validate *validator.Validate) error {
	nd.Donor = core.CleanString(nd.Donor)
	nd.DonorEmail = core.CleanString(nd.DonorEmail, true /* lower */)
	nd.Purpose = core.CleanString(nd.Purpose)
	return validate.Struct(nd)
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) IsEmpty() bool { return qf.Search == "" }

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
