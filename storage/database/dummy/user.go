package dummydb

import (
	"sort"

	"github.com/dikshafoundation/diksha/core/user"
	"github.com/dikshafoundation/diksha/core/views"
)

type userRepository struct {
	db *table[user.User]
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

func userID(u *user.User) *string { return &u.ID }

func (repo *userRepository) CheckUsernameUniqueness(username, email string, excludedUsers ...user.User) error {
	exclUsrsLen := len(excludedUsers)
	if exclUsrsLen > 1 {
		sort.Slice(excludedUsers, func(i, j int) bool { return excludedUsers[i].ID < excludedUsers[j].ID })
	}

	for _, usr := range repo.db.all() {
		if usr.Username == username && !isExcluded(usr, excludedUsers, exclUsrsLen) {
			return user.ErrUsernameExists
		}
		if usr.Email == email && !isExcluded(usr, excludedUsers, exclUsrsLen) {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	return insert(repo.db, usr, userID, user.ErrIDExists)
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	return repo.db.all(), nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	for _, usr := range repo.db.all() {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	for _, usr := range repo.db.all() {
		if usr.Username == username {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	for _, usr := range repo.db.all() {
		if usr.Email == email {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsernameOrEmail(username string) (user.User, error) {
	for _, usr := range repo.db.all() {
		if (usr.Username == username) || (usr.Email == username) {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	users := repo.db.all()

	users = views.FilterBySearch(users, filter.Search, func(u user.User) []string {
		return []string{u.Name, u.Username, u.Email}
	})
	// users with any of the specified roles
	if users != nil && len(filter.Roles) > 0 {
		var filtered []user.User
		for _, u := range users {
			for _, r := range filter.Roles {
				if u.RoleStartsWith(r) {
					filtered = append(filtered, u)
					break
				}
			}
		}
		users = filtered
	}
	if users != nil && filter.IsActive != nil {
		var filtered []user.User
		for _, u := range users {
			if u.IsActive == *filter.IsActive {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	if users != nil && !filter.CreatedFrom.IsZero() {
		var filtered []user.User
		timeUTC := filter.CreatedFrom.UTC()
		for _, u := range users {
			if u.CreatedAt.Equal(timeUTC) || u.CreatedAt.After(timeUTC) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	if users != nil && !filter.CreatedTo.IsZero() {
		var filtered []user.User
		timeUTC := filter.CreatedTo.UTC()
		for _, u := range users {
			if u.CreatedAt.Before(timeUTC) || u.CreatedAt.Equal(timeUTC) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	return users, nil
}

func (repo *userRepository) UpdateUser(usr user.User, isActive *bool) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	for i := range repo.db.rows {
		origUsr := &repo.db.rows[i]
		if origUsr.ID != usr.ID {
			continue
		}

		if usr.Name != "" {
			origUsr.Name = usr.Name
		}
		if usr.Username != "" {
			origUsr.Username = usr.Username
		}
		if usr.Email != "" {
			origUsr.Email = usr.Email
		}
		if usr.Roles != nil {
			origUsr.Roles = usr.Roles
		}
		if usr.PasswordHash != nil {
			origUsr.PasswordHash = usr.PasswordHash
		}
		if isActive != nil {
			origUsr.IsActive = *isActive
		}
		if !usr.LastLogin.IsZero() {
			origUsr.LastLogin = usr.LastLogin
		}
		origUsr.UpdatedAt = usr.UpdatedAt
		return *origUsr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) DeleteUsersByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	deleted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		deleted[id] = struct{}{}
	}

	kept := repo.db.rows[:0]
	for _, usr := range repo.db.rows {
		if _, ok := deleted[usr.ID]; !ok {
			kept = append(kept, usr)
		}
	}
	repo.db.rows = kept
	return nil
}

func isExcluded(usr user.User, excludedUsers []user.User, n int) bool {
	if n <= 0 {
		return false
	}
	idx := sort.Search(n, func(i int) bool { return excludedUsers[i].ID >= usr.ID })
	return idx < n && excludedUsers[idx].ID == usr.ID
}
