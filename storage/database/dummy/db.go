// Package dummydb is an in-memory database intended for development and
// tests. Every table keeps insertion order so list endpoints and derived
// views stay reproducible across reads.
package dummydb

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dikshafoundation/diksha/core/blog"
	"github.com/dikshafoundation/diksha/core/course"
	"github.com/dikshafoundation/diksha/core/donation"
	"github.com/dikshafoundation/diksha/core/notice"
	"github.com/dikshafoundation/diksha/core/records"
	"github.com/dikshafoundation/diksha/core/student"
	"github.com/dikshafoundation/diksha/core/user"
	"github.com/dikshafoundation/diksha/core/volunteer"
)

type (
	DB struct {
		user         *table[user.User]
		course       *table[course.Course]
		student      *table[student.Record]
		volunteer    *table[volunteer.Volunteer]
		donation     *table[donation.Donation]
		post         *table[blog.Post]
		notification *table[notice.Notification]
		announcement *table[notice.Announcement]
		certificate  *table[records.Certificate]
		achievement  *table[records.Achievement]
		event        *table[records.Event]
		attendance   *table[records.Attendance]
	}

	table[T any] struct {
		sync.RWMutex
		rows []T
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:         &table[user.User]{},
		course:       &table[course.Course]{},
		student:      &table[student.Record]{},
		volunteer:    &table[volunteer.Volunteer]{},
		donation:     &table[donation.Donation]{},
		post:         &table[blog.Post]{},
		notification: &table[notice.Notification]{},
		announcement: &table[notice.Announcement]{},
		certificate:  &table[records.Certificate]{},
		achievement:  &table[records.Achievement]{},
		event:        &table[records.Event]{},
		attendance:   &table[records.Attendance]{},
	}
	return db, nil
}

// all returns a copy so callers never alias the table's backing slice.
func (tbl *table[T]) all() []T {
	tbl.RLock()
	defer tbl.RUnlock()

	rows := make([]T, len(tbl.rows))
	copy(rows, tbl.rows)
	return rows
}

// insert appends one row, assigning a fresh UUID when the caller left the
// identifier empty. A caller-provided identifier that is already taken is
// rejected with errExists.
func insert[T any](tbl *table[T], row T, id func(*T) *string, errExists error) (T, error) {
	tbl.Lock()
	defer tbl.Unlock()

	rowID := id(&row)
	if *rowID == "" {
		*rowID = uuid.New().String()
	} else {
		for i := range tbl.rows {
			if *id(&tbl.rows[i]) == *rowID {
				var zero T
				return zero, errExists
			}
		}
	}
	tbl.rows = append(tbl.rows, row)
	return row, nil
}

// replace swaps the table contents wholesale, applying the same identifier
// rules as insert. Used by fixture loading.
func replace[T any](tbl *table[T], rows []T, id func(*T) *string, errExists error) error {
	tbl.Lock()
	defer tbl.Unlock()

	fresh := make([]T, len(rows))
	copy(fresh, rows)

	seen := make(map[string]struct{}, len(fresh))
	for i := range fresh {
		rowID := id(&fresh[i])
		if *rowID == "" {
			*rowID = uuid.New().String()
		}
		if _, dup := seen[*rowID]; dup {
			return errExists
		}
		seen[*rowID] = struct{}{}
	}
	tbl.rows = fresh
	return nil
}
