package blog

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("post not found")
	ErrIDExists = errors.New("a post with this identifier already exists")
)

type (
	Repository interface {
		CreatePost(p Post) (Post, error)
		QueryAllPosts() ([]Post, error)
		GetPostByID(id string) (Post, error)
		// FilterPosts applies Search (case-insensitive match on Title or
		// Author) first, then Status, then Category, in that fixed order.
		FilterPosts(filter QueryFilter) ([]Post, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(np NewPost) (Post, error) {
	p := Post{
		Title:    np.Title,
		Author:   np.Author,
		Category: np.Category,
		Content:  np.Content,
		Status:   np.Status,
		Date:     time.Now().UTC(),
	}
	return svc.repo.CreatePost(p)
}

func (svc *Service) Query() ([]Post, error) {
	return svc.repo.QueryAllPosts()
}

func (svc *Service) GetByID(id string) (Post, error) {
	return svc.repo.GetPostByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Post, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllPosts()
	}
	return svc.repo.FilterPosts(filter)
}
