package dummydb

import (
	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/views"
)

type postRepository struct {
	db *table[blog.Post]
}

var _ blog.Repository = (*postRepository)(nil) // interface compliance check

func NewPostRepository(db *DB) blog.Repository {
	return &postRepository{db: db.post}
}

func postID(p *blog.Post) *string { return &p.ID }

func (repo *postRepository) CreatePost(p blog.Post) (blog.Post, error) {
	return insert(repo.db, p, postID, blog.ErrIDExists)
}

func (repo *postRepository) QueryAllPosts() ([]blog.Post, error) {
	return repo.db.all(), nil
}

func (repo *postRepository) GetPostByID(id string) (blog.Post, error) {
	for _, p := range repo.db.all() {
		if p.ID == id {
			return p, nil
		}
	}
	return blog.Post{}, blog.ErrNotFound
}

func (repo *postRepository) FilterPosts(filter blog.QueryFilter) ([]blog.Post, error) {
	posts := repo.db.all()

	posts = views.FilterBySearch(posts, filter.Search, func(p blog.Post) []string {
		return []string{p.Title, p.Author}
	})
	posts = views.FilterByStatus(posts, filter.Status, func(p blog.Post) string {
		return p.Status
	})
	posts = views.FilterByStatus(posts, filter.Category, func(p blog.Post) string {
		return p.Category
	})
	return posts, nil
}
