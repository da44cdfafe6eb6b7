package tableview

import (
	"slices"
	"strings"
)

// FilterFunc reports whether a record matches a non-sentinel filter value
// for one filter dimension.
type FilterFunc[T any] func(record T, value string) bool

// Config describes one entity variant's table behaviour.
type Config[T any] struct {
	// ID extracts the record's opaque identifier.
	ID func(T) string
	// SearchFields are the fields matched case-insensitively as substrings
	// against the search text. Empty search text matches everything.
	SearchFields []func(T) string
	// Sorters maps sortable field names to comparators.
	Sorters map[string]Comparator[T]
	// Filters maps filter dimension names to matchers. The sentinel value
	// "all" (any case) or an unset dimension matches everything; all set
	// dimensions are ANDed.
	Filters map[string]FilterFunc[T]
	// DefaultSort is the initial sort field; DefaultDesc its direction.
	DefaultSort string
	DefaultDesc bool
	// PageSize is the fixed page size for this view.
	PageSize int
}

// View derives the visible page from a Store and the current view
// parameters. The projection is recomputed from scratch on every Page call;
// no derived state is cached between calls.
type View[T any] struct {
	cfg     Config[T]
	store   *Store[T]
	search  string
	filters map[string]string
	sort    string
	desc    bool
	page    int
}

// Result is one projected page.
type Result[T any] struct {
	Records      []T
	Page         int // clamped, 1-indexed
	TotalPages   int
	TotalRecords int // after filtering, before pagination
}

// NewView wires a view over store with the given per-entity configuration.
func NewView[T any](store *Store[T], cfg Config[T]) *View[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	return &View[T]{
		cfg:     cfg,
		store:   store,
		filters: make(map[string]string),
		sort:    cfg.DefaultSort,
		desc:    cfg.DefaultDesc,
		page:    1,
	}
}

// SetSearch replaces the search text.
func (v *View[T]) SetSearch(text string) { v.search = text }

// SetFilter sets one filter dimension's value. "all" (any case) or the
// empty string clears the dimension.
func (v *View[T]) SetFilter(dimension, value string) {
	if isSentinel(value) {
		delete(v.filters, dimension)
		return
	}
	v.filters[dimension] = value
}

// SortBy reproduces the column-header interaction: clicking the active
// field flips direction, clicking a new field sorts ascending by it.
func (v *View[T]) SortBy(field string) {
	if v.sort == field {
		v.desc = !v.desc
		return
	}
	v.sort = field
	v.desc = false
}

// SetSort sets the sort field and direction directly.
func (v *View[T]) SetSort(field string, desc bool) {
	v.sort = field
	v.desc = desc
}

// Sort returns the current sort field and direction.
func (v *View[T]) Sort() (field string, desc bool) { return v.sort, v.desc }

// SetPage moves to a 1-indexed page. Out-of-range values are clamped on the
// next projection, never rendered as a silently empty page.
func (v *View[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

// NextPage advances one page.
func (v *View[T]) NextPage() { v.page++ }

// PrevPage goes back one page.
func (v *View[T]) PrevPage() { v.SetPage(v.page - 1) }

// Page projects the current page: filter, sort, clamp, slice. Pure with
// respect to its inputs — identical store contents and parameters always
// produce identical output.
func (v *View[T]) Page() Result[T] {
	rows := v.store.Snapshot()

	filtered := rows[:0:0]
	for _, r := range rows {
		if v.matches(r) {
			filtered = append(filtered, r)
		}
	}

	if cmp, ok := v.cfg.Sorters[v.sort]; ok {
		if v.desc {
			inner := cmp
			cmp = func(a, b T) int { return -inner(a, b) }
		}
		// Stable keeps ties in snapshot order, so recomputation with
		// unchanged inputs can never visibly reorder them.
		slices.SortStableFunc(filtered, cmp)
	}

	total := len(filtered)
	totalPages := (total + v.cfg.PageSize - 1) / v.cfg.PageSize

	v.page = clampPage(v.page, totalPages)

	start := (v.page - 1) * v.cfg.PageSize
	end := start + v.cfg.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Records:      filtered[start:end],
		Page:         v.page,
		TotalPages:   totalPages,
		TotalRecords: total,
	}
}

// VisibleIDs returns the IDs of the current page's records, the scope of
// the select-all checkbox.
func (v *View[T]) VisibleIDs() []string {
	page := v.Page()
	ids := make([]string, len(page.Records))
	for i, r := range page.Records {
		ids[i] = v.cfg.ID(r)
	}
	return ids
}

func (v *View[T]) matches(record T) bool {
	if v.search != "" {
		needle := strings.ToLower(v.search)
		found := false
		for _, field := range v.cfg.SearchFields {
			if strings.Contains(strings.ToLower(field(record)), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for dimension, value := range v.filters {
		match, ok := v.cfg.Filters[dimension]
		if !ok {
			continue
		}
		if !match(record, value) {
			return false
		}
	}

	return true
}

func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func isSentinel(value string) bool {
	return value == "" || strings.EqualFold(value, "all")
}
