// Package listing implements the list screen shared by every entity: the full collection is
// loaded once per session, filtered in memory, and a single row can be selected for the
// edit and delete actions.
package listing

import (
	"deportur/shared"
	"deportur/shared/constant"
	"deportur/shared/export"
	"net/url"
	"strings"
)

// Filter is an exact-match dropdown filter.
type Filter[T any] struct {
	Name  string
	Value func(item T) string
}

// Schema describes how a screen identifies, searches, filters and exports its rows.
type Schema[T any] struct {
	// Name keys the screen state in the session and names the export sheet.
	Name string
	// Entity is used in operator facing messages.
	Entity  string
	Key     func(item T) int64
	Label   func(item T) string
	Search  []func(item T) string
	Filters []Filter[T]
	Columns []export.Column[T]
	// KeepOnDelete marks the collection stale after a delete instead of dropping the row,
	// for entities whose delete is a state change on the backend.
	KeepOnDelete bool
}

// Query is the filter state of a screen. Empty values are inactive.
type Query struct {
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
}

// Matches reports whether item satisfies every active part of query.
func (s Schema[T]) Matches(item T, query Query) bool {
	if search := strings.TrimSpace(query.Search); search != constant.Empty {
		matched := false

		for _, field := range s.Search {
			if shared.ContainsFold(field(item), search) {
				matched = true

				break
			}
		}

		if !matched {
			return false
		}
	}

	for _, filter := range s.Filters {
		want := strings.TrimSpace(query.Filters[filter.Name])
		if want == constant.Empty {
			continue
		}

		if !strings.EqualFold(filter.Value(item), want) {
			return false
		}
	}

	return true
}

// Apply returns the items matching query, preserving order.
func (s Schema[T]) Apply(items []T, query Query) []T {
	filtered := make([]T, 0, len(items))

	for _, item := range items {
		if s.Matches(item, query) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// QueryFromValues reads the search and the schema's filters from URL values. The second
// result is false when none of them were sent, so the stored query stays in effect.
func (s Schema[T]) QueryFromValues(values url.Values) (Query, bool) {
	query := Query{Filters: map[string]string{}}
	present := values.Has(constant.RequestParamSearch)

	query.Search = strings.TrimSpace(values.Get(constant.RequestParamSearch))

	for _, filter := range s.Filters {
		if !values.Has(filter.Name) {
			continue
		}

		present = true

		if value := strings.TrimSpace(values.Get(filter.Name)); value != constant.Empty {
			query.Filters[filter.Name] = value
		}
	}

	return query, present
}
