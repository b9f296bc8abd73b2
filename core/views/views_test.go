package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rec struct {
	Name   string
	Email  string
	Status string
}

var recs = []rec{
	{Name: "John Doe", Email: "john@test.cd", Status: "active"},
	{Name: "Jane Roe", Email: "jane@test.cd", Status: "pending"},
	{Name: "Mary Major", Email: "mary@test.cd", Status: "active"},
	{Name: "Li Wei", Email: "li@test.cd", Status: "inactive"},
}

func searchFields(r rec) []string { return []string{r.Name, r.Email} }
func statusField(r rec) string    { return r.Status }

func TestFilterBySearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []rec
	}{
		{name: "empty query is identity", query: "", want: recs},
		{name: "blank query is identity", query: "   ", want: recs},
		{name: "case-insensitive substring", query: "john", want: []rec{recs[0]}},
		{name: "upper-case query", query: "MARY", want: []rec{recs[2]}},
		{name: "matches any field", query: "test.cd", want: recs},
		{name: "no match", query: "nobody", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterBySearch(recs, tt.query, searchFields))
		})
	}
}

func TestFilterByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   []rec
	}{
		{name: "all is identity", status: StatusAll, want: recs},
		{name: "empty is identity", status: "", want: recs},
		{name: "match preserves order", status: "active", want: []rec{recs[0], recs[2]}},
		{name: "no match", status: "archived", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByStatus(recs, tt.status, statusField))
		})
	}
}

func TestFilterCombined(t *testing.T) {
	// search first, then status; relative order preserved
	got := FilterByStatus(FilterBySearch(recs, "test.cd", searchFields), "active", statusField)
	assert.Equal(t, []rec{recs[0], recs[2]}, got)
}

func TestAggregates(t *testing.T) {
	assert.Equal(t, 2, Count(recs, func(r rec) bool { return r.Status == "active" }))
	assert.Equal(t, float64(len(recs)), Sum(recs, func(rec) float64 { return 1 }))

	assert.Equal(t, 0, Percent(0, 0), "empty total must yield 0")
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(5, 5))

	assert.Equal(t, 0, AveragePercent(nil), "empty collection must yield 0")
	assert.Equal(t, 50, AveragePercent([]int{25, 75}))
	assert.Equal(t, 33, AveragePercent([]int{0, 50, 50}))
}
