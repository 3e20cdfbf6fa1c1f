package listing

import (
	"time"
)

// State is the serialisable part of a screen kept in the operator session.
type State[T any] struct {
	Items       []T       `json:"items"`
	Query       Query     `json:"query"`
	SelectedKey *int64    `json:"selected_key,omitempty"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// Screen binds a state to its schema.
type Screen[T any] struct {
	Schema Schema[T]
	State  State[T]
}

// View is what a list endpoint returns.
type View[T any] struct {
	Items      []T       `json:"items"`
	Total      int       `json:"total"`
	Matched    int       `json:"matched"`
	Query      Query     `json:"query"`
	SelectedID *int64    `json:"selected_id,omitempty"`
	LoadedAt   time.Time `json:"loaded_at"`
}

func (sc *Screen[T]) Loaded() bool {
	return !sc.State.LoadedAt.IsZero()
}

// Load replaces the collection. A selection pointing at a row that no longer exists is
// cleared.
func (sc *Screen[T]) Load(items []T, at time.Time) {
	if items == nil {
		items = []T{}
	}

	sc.State.Items = items
	sc.State.LoadedAt = at

	if sc.State.SelectedKey != nil {
		if _, ok := sc.Find(*sc.State.SelectedKey); !ok {
			sc.State.SelectedKey = nil
		}
	}
}

// Stale forces the next read to refetch the collection.
func (sc *Screen[T]) Stale() {
	sc.State.LoadedAt = time.Time{}
}

func (sc *Screen[T]) SetQuery(query Query) {
	sc.State.Query = query
}

func (sc *Screen[T]) Filtered() []T {
	return sc.Schema.Apply(sc.State.Items, sc.State.Query)
}

func (sc *Screen[T]) Find(key int64) (T, bool) {
	for _, item := range sc.State.Items {
		if sc.Schema.Key(item) == key {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Select stages the row with key for edit and delete actions.
func (sc *Screen[T]) Select(key int64) bool {
	if _, ok := sc.Find(key); !ok {
		return false
	}

	sc.State.SelectedKey = &key

	return true
}

func (sc *Screen[T]) Selected() (T, bool) {
	if sc.State.SelectedKey == nil {
		var zero T

		return zero, false
	}

	return sc.Find(*sc.State.SelectedKey)
}

func (sc *Screen[T]) ClearSelection() {
	sc.State.SelectedKey = nil
}

// Upsert replaces the row with the same key or appends item.
func (sc *Screen[T]) Upsert(item T) {
	key := sc.Schema.Key(item)

	for idx, existing := range sc.State.Items {
		if sc.Schema.Key(existing) == key {
			sc.State.Items[idx] = item

			return
		}
	}

	sc.State.Items = append(sc.State.Items, item)
}

// Remove drops the row with key without refetching.
func (sc *Screen[T]) Remove(key int64) bool {
	for idx, item := range sc.State.Items {
		if sc.Schema.Key(item) != key {
			continue
		}

		sc.State.Items = append(sc.State.Items[:idx:idx], sc.State.Items[idx+1:]...)

		if sc.State.SelectedKey != nil && *sc.State.SelectedKey == key {
			sc.State.SelectedKey = nil
		}

		return true
	}

	return false
}

func (sc *Screen[T]) View() View[T] {
	filtered := sc.Filtered()

	return View[T]{
		Items:      filtered,
		Total:      len(sc.State.Items),
		Matched:    len(filtered),
		Query:      sc.State.Query,
		SelectedID: sc.State.SelectedKey,
		LoadedAt:   sc.State.LoadedAt,
	}
}

// MapView converts the rows of a view, keeping the counters.
func MapView[T, R any](view View[T], mapper func(T) R) View[R] {
	items := make([]R, len(view.Items))
	for idx, item := range view.Items {
		items[idx] = mapper(item)
	}

	return View[R]{
		Items:      items,
		Total:      view.Total,
		Matched:    view.Matched,
		Query:      view.Query,
		SelectedID: view.SelectedID,
		LoadedAt:   view.LoadedAt,
	}
}
