package blog

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dikshafoundation/diksha/core"
)

// Categories
const (
	CategoryBlog     = "blog"
	CategoryResource = "resource"
)

// Statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Post struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Category string    `json:"category"` // blog | resource
	Content  string    `json:"content"`
	Status   string    `json:"status"` // draft | published
	Date     time.Time `json:"date"`   // UTC
}

// NewPost contains information needed to create a new Post.
type NewPost struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category" validate:"required,oneof=blog resource"`
	Content  string `json:"content" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (np *NewPost) Validate(validate *validator.Validate) error {
	np.Title = core.CleanString(np.Title)
	np.Author = core.CleanString(np.Author)
	np.Category = core.CleanString(np.Category, true /* lower */)
	np.Status = core.CleanString(np.Status, true /* lower */)
	if np.Status == "" {
		np.Status = StatusDraft
	}
	return validate.Struct(np)
}

type QueryFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Category string `query:"category"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" &&
		(qf.Status == "" || qf.Status == "all") &&
		(qf.Category == "" || qf.Category == "all")
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.Category = core.CleanString(qf.Category, true /* lower */)
}
