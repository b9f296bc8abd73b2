// Package records holds the student dashboard's display-only collections:
// certificates, achievements, events and attendance. They are seeded from
// fixtures and never mutated in scope.
package records

import "time"

type Certificate struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Course   string    `json:"course"`
	IssuedAt time.Time `json:"issued_at"` // UTC
}

type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"` // UTC
}

type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"` // UTC
}

type Attendance struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"` // UTC
	Present bool      `json:"present"`
}
