package donation

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core"
	"github.com/dikshafoundation/diksha/core/notice"
)

var (
	// errors
	ErrNotFound = errors.New("donation not found")
	ErrIDExists = errors.New("a donation with this identifier already exists")
)

type (
	Repository interface {
		CreateDonation(don Donation) (Donation, error)
		QueryAllDonations() ([]Donation, error)
		// FilterDonations does a case-insensitive Search match on Donor or Purpose.
		FilterDonations(filter QueryFilter) ([]Donation, error)
	}

	Service struct {
		repo      Repository
		noticeSvc *notice.Service
		mailSvc   core.EmailService
		conf      *core.Config
	}
)

func NewService(repo Repository, noticeSvc *notice.Service, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{
		repo:      repo,
		noticeSvc: noticeSvc,
		mailSvc:   mailSvc,
		conf:      conf,
	}
}

// Create records the donation, pushes a dashboard notification and, when
// the donor left an email address, sends a thank-you mail.
func (svc *Service) Create(nd NewDonation) (Donation, error) {
	don := Donation{
		Donor:   nd.Donor,
		Amount:  nd.Amount,
		Purpose: nd.Purpose,
		Date:    time.Now().UTC(),
	}
	don, err := svc.repo.CreateDonation(don)
	if err != nil {
		return Donation{}, err
	}

	msg := fmt.Sprintf("New donation of %.2f from %s for %s", don.Amount, don.Donor, don.Purpose)
	if _, err = svc.noticeSvc.Push(msg, notice.TypeDonation); err != nil {
		return Donation{}, errors.Wrap(err, "pushing donation notification")
	}

	if nd.DonorEmail != "" {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: don.Donor, Address: nd.DonorEmail}},
			Subject: "Thank you for your donation",
			BodyStr: fmt.Sprintf(
				"Dear %s,\n\nThank you for your generous donation of %.2f towards %s.\n"+
					"Your support keeps our classrooms open.\n\n%s",
				don.Donor, don.Amount, don.Purpose, svc.conf.AppName,
			),
		})
	}
	return don, nil
}

func (svc *Service) Query() ([]Donation, error) {
	return svc.repo.QueryAllDonations()
}

func (svc *Service) Filter(filter QueryFilter) ([]Donation, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllDonations()
	}
	return svc.repo.FilterDonations(filter)
}

// TotalAmount sums every recorded donation.
func (svc *Service) TotalAmount() (float64, error) {
	dons, err := svc.repo.QueryAllDonations()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, don := range dons {
		total += don.Amount
	}
	return total, nil
}
