package models

import (
	"fmt"
	"sort"
	"strings"
)

// CategoryFilter selects campaigns by category. The zero value matches
// every category; use ExactCategory to restrict. A tagged option is used
// instead of a sentinel string so a real category can never collide with
// the "no filter" case.
type CategoryFilter struct {
	category string
	exact    bool
}

// AnyCategory returns a filter that matches all categories.
func AnyCategory() CategoryFilter {
	return CategoryFilter{}
}

// ExactCategory returns a filter matching only the given category.
func ExactCategory(category string) CategoryFilter {
	return CategoryFilter{category: category, exact: true}
}

// Matches reports whether the campaign passes the category filter.
func (f CategoryFilter) Matches(c Campaign) bool {
	return !f.exact || c.Category == f.category
}

// IsAny reports whether the filter matches all categories.
func (f CategoryFilter) IsAny() bool {
	return !f.exact
}

// SortKey selects the comparator applied to a campaign listing.
type SortKey string

// enum values for SortKey
const (
	SortFeatured   SortKey = "featured"
	SortNewest     SortKey = "newest"
	SortEndingSoon SortKey = "ending-soon"
	SortMostFunded SortKey = "most-funded"
)

// ParseSortKey validates a sort key from the wire. An empty string maps
// to the default featured ordering.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortFeatured, SortNewest, SortEndingSoon, SortMostFunded:
		return SortKey(s), nil
	case "":
		return SortFeatured, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// ListQuery describes one filtered, sorted view over the collection.
type ListQuery struct {
	Search       string
	Category     CategoryFilter
	Sort         SortKey
	FeaturedOnly bool
}

// MatchesSearch reports whether the term is a case-insensitive substring
// of the campaign title or description. An empty term matches everything.
func MatchesSearch(c Campaign, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Description), term)
}

// FilterCampaigns returns the campaigns matching the query predicates,
// preserving the input order. The input slice is never mutated.
func FilterCampaigns(campaigns []Campaign, q ListQuery) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if q.FeaturedOnly && !c.Featured {
			continue
		}
		if !MatchesSearch(c, q.Search) {
			continue
		}
		if !q.Category.Matches(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortCampaigns returns a new slice ordered by the sort key. All
// comparators are stable, so re-applying the same sort is idempotent.
func SortCampaigns(campaigns []Campaign, key SortKey) []Campaign {
	out := make([]Campaign, len(campaigns))
	copy(out, campaigns)

	switch key {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortEndingSoon:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Deadline.Before(out[j].Deadline)
		})
	case SortMostFunded:
		// Funding ratio, not absolute amount: a 90%-funded small campaign
		// ranks above a 50%-funded large one.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentAmount/out[i].Goal > out[j].CurrentAmount/out[j].Goal
		})
	case SortFeatured:
		fallthrough
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	}
	return out
}

// ApplyQuery composes filter then sort over a collection snapshot.
func ApplyQuery(campaigns []Campaign, q ListQuery) []Campaign {
	return SortCampaigns(FilterCampaigns(campaigns, q), q.Sort)
}
