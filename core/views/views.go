// Package views holds the pure helpers every derived dashboard view is
// computed with: substring search, status filtering and the aggregate
// reductions (counts, sums, rounded percentages).
//
// All helpers are side-effect free and preserve the relative order of the
// input collection. Combined filtering must always apply search first and
// the status predicate second so results stay reproducible.
package views

import (
	"math"
	"strings"
)

// StatusAll is the sentinel status value that matches every record.
const StatusAll = "all"

// FilterBySearch returns the records whose any of the extracted fields
// contains query, case-insensitively. An empty query returns the
// collection unchanged.
func FilterBySearch[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	var filtered []T
	for _, item := range items {
		for _, fld := range fields(item) {
			if strings.Contains(strings.ToLower(fld), query) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// FilterByStatus returns the records whose status field equals status.
// StatusAll and the empty string return the collection unchanged.
func FilterByStatus[T any](items []T, status string, field func(T) string) []T {
	if status == "" || status == StatusAll {
		return items
	}

	var filtered []T
	for _, item := range items {
		if field(item) == status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Count returns the number of records matching pred.
func Count[T any](items []T, pred func(T) bool) int {
	var n int
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Sum reduces the collection to the sum of the extracted values.
func Sum[T any](items []T, value func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += value(item)
	}
	return total
}

// Percent returns part out of total as a percentage rounded to the
// nearest integer. An empty total yields 0, never a fault.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// AveragePercent returns the rounded mean of per-item percentage values;
// 0 for an empty collection.
func AveragePercent(values []int) int {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, v := range values {
		total += v
	}
	return int(math.Round(float64(total) / float64(len(values))))
}
