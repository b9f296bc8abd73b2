package dashboard

import (
	"github.com/go-playground/validator/v10"

	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

// Form entities
const (
	FormCourse       = "course"
	FormStudent      = "student"
	FormVolunteer    = "volunteer"
	FormDonation     = "donation"
	FormPost         = "post"
	FormAnnouncement = "announcement"
)

// CourseFormSpec binds the admin "add course" modal to the course service.
func CourseFormSpec(svc *course.Service, validate *validator.Validate) FormSpec {
	return FormSpec{
		Entity: FormCourse,
		Fields: []FormField{
			{Name: "title", Kind: FieldText, Required: true},
			{Name: "instructor", Kind: FieldText, Required: true},
			{Name: "status", Kind: FieldText},
			{Name: "modules", Kind: FieldNumber},
		},
		Submit: func(draft Draft) error {
			nc := course.NewCourse{
				Title:      draft.Text("title"),
				Instructor: draft.Text("instructor"),
				Status:     draft.Text("status"),
				Modules:    draft.Int("modules"),
			}
			if err := nc.Validate(validate); err != nil {
				return err
			}
			_, err := svc.Create(nc)
			return err
		},
	}
}

// StudentFormSpec binds the admin "enroll student" modal to the roster service.
func StudentFormSpec(svc *student.Service, validate *validator.Validate) FormSpec {
	return FormSpec{
		Entity: FormStudent,
		Fields: []FormField{
			{Name: "name", Kind: FieldText, Required: true},
			{Name: "email", Kind: FieldText, Required: true},
			{Name: "course", Kind: FieldText, Required: true},
			{Name: "status", Kind: FieldText},
		},
		Submit: func(draft Draft) error {
			nr := student.NewRecord{
				Name:   draft.Text("name"),
				Email:  draft.Text("email"),
				Course: draft.Text("course"),
				Status: draft.Text("status"),
			}
			if err := nr.Validate(validate); err != nil {
				return err
			}
			_, err := svc.Create(nr)
			return err
		},
	}
}

// VolunteerFormSpec binds the "join as volunteer" modal to the volunteer service.
func VolunteerFormSpec(svc *volunteer.Service, validate *validator.Validate) FormSpec {
	return FormSpec{
		Entity: FormVolunteer,
		Fields: []FormField{
			{Name: "name", Kind: FieldText, Required: true},
			{Name: "role", Kind: FieldText, Required: true},
			{Name: "hours", Kind: FieldNumber},
		},
		Submit: func(draft Draft) error {
			nv := volunteer.NewVolunteer{
				Name:  draft.Text("name"),
				Role:  draft.Text("role"),
				Hours: draft.Int("hours"),
			}
			if err := nv.Validate(validate); err != nil {
				return err
			}
			_, err := svc.Create(nv)
			return err
		},
	}
}

// DonationFormSpec binds the "record donation" modal to the donation service.
func DonationFormSpec(svc *donation.Service, validate *validator.Validate) FormSpec {
	return FormSpec{
		Entity: FormDonation,
		Fields: []FormField{
			{Name: "donor", Kind: FieldText, Required: true},
			{Name: "donor_email", Kind: FieldText},
			{Name: "amount", Kind: FieldNumber},
			{Name: "purpose", Kind: FieldText, Required: true},
		},
		Submit: func(draft Draft) error {
			nd := donation.NewDonation{
				Donor:      draft.Text("donor"),
				DonorEmail: draft.Text("donor_email"),
				Amount:     draft.Number("amount"),
				Purpose:    draft.Text("purpose"),
			}
			if err := nd.Validate(validate); err != nil {
				return err
			}
			_, err := svc.Create(nd)
			return err
		},
	}
}

// PostFormSpec binds the "write post" modal to the blog service.
func PostFormSpec(svc *blog.Service, validate *validator.Validate) FormSpec {
	return FormSpec{
		Entity: FormPost,
		Fields: []FormField{
			{Name: "title", Kind: FieldText, Required: true},
			{Name: "author", Kind: FieldText, Required: true},
			{Name: "category", Kind: FieldText, Required: true},
			{Name: "content", Kind: FieldText, Required: true},
			{Name: "status", Kind: FieldText},
		},
		Submit: func(draft Draft) error {
			np := blog.NewPost{
				Title:    draft.Text("title"),
				Author:   draft.Text("author"),
				Category: draft.Text("category"),
				Content:  draft.Text("content"),
				Status:   draft.Text("status"),
			}
			if err := np.Validate(validate); err != nil {
				return err
			}
			_, err := svc.Create(np)
			return err
		},
	}
}

// AnnouncementFormSpec binds the volunteer page "announce" modal to the notice service.
func AnnouncementFormSpec(svc *notice.Service, validate *validator.Validate) FormSpec {
	return FormSpec{
		Entity: FormAnnouncement,
		Fields: []FormField{
			{Name: "title", Kind: FieldText, Required: true},
			{Name: "content", Kind: FieldText, Required: true},
			{Name: "author", Kind: FieldText, Required: true},
		},
		Submit: func(draft Draft) error {
			na := notice.NewAnnouncement{
				Title:   draft.Text("title"),
				Content: draft.Text("content"),
				Author:  draft.Text("author"),
			}
			if err := na.Validate(validate); err != nil {
				return err
			}
			_, err := svc.Announce(na)
			return err
		},
	}
}
