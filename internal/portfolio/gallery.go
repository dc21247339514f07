package portfolio

import (
	"sort"
	"strings"
	"time"
)

// FilterState describes the active gallery filters. Empty slices mean
// the dimension is unfiltered.
type FilterState struct {
	Category   []string `json:"category"`
	Technology []string `json:"technology"`
	Industry   []string `json:"industry"`
	Status     []string `json:"status"`
}

// SortBy selects a gallery sort order.
type SortBy string

const (
	SortDateDesc SortBy = "date-desc"
	SortDateAsc  SortBy = "date-asc"
	SortNameAsc  SortBy = "name-asc"
	SortNameDesc SortBy = "name-desc"
	SortCategory SortBy = "category"
	SortStatus   SortBy = "status"
)

// FilterProjects returns the records passing every active filter
// dimension. Technology matching is case-insensitive substring, the
// other dimensions are exact.
func FilterProjects(projects []ProjectRecord, filters FilterState) []ProjectRecord {
	result := make([]ProjectRecord, 0, len(projects))
	for _, p := range projects {
		if len(filters.Category) > 0 && p.Category != "" && !contains(filters.Category, p.Category) {
			continue
		}
		if len(filters.Technology) > 0 && !hasMatchingTech(p.TechStack, filters.Technology) {
			continue
		}
		if len(filters.Industry) > 0 && p.Industry != "" && !contains(filters.Industry, p.Industry) {
			continue
		}
		if len(filters.Status) > 0 && p.Status != "" && !contains(filters.Status, p.Status) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// SortProjects returns a sorted copy of the records. Unknown sort keys
// return the input order.
func SortProjects(projects []ProjectRecord, by SortBy) []ProjectRecord {
	sorted := make([]ProjectRecord, len(projects))
	copy(sorted, projects)

	switch by {
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return completionTime(sorted[i]).After(completionTime(sorted[j]))
		})
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return completionTime(sorted[i]).Before(completionTime(sorted[j]))
		})
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title > sorted[j].Title
		})
	case SortCategory:
		sort.SliceStable(sorted, func(i, j int) bool {
			return categoryKey(sorted[i]) < categoryKey(sorted[j])
		})
	case SortStatus:
		sort.SliceStable(sorted, func(i, j int) bool {
			return statusOrder(sorted[i].Status) < statusOrder(sorted[j].Status)
		})
	}
	return sorted
}

// UniqueValues extracts the distinct filter options present in the
// records, each list in first-seen order.
func UniqueValues(projects []ProjectRecord) (categories, technologies, industries, statuses []string) {
	seenCat := map[string]bool{}
	seenTech := map[string]bool{}
	seenInd := map[string]bool{}
	seenStatus := map[string]bool{}
	for _, p := range projects {
		if p.Category != "" && !seenCat[p.Category] {
			seenCat[p.Category] = true
			categories = append(categories, p.Category)
		}
		for _, tech := range p.TechStack {
			if !seenTech[tech] {
				seenTech[tech] = true
				technologies = append(technologies, tech)
			}
		}
		if p.Industry != "" && !seenInd[p.Industry] {
			seenInd[p.Industry] = true
			industries = append(industries, p.Industry)
		}
		if p.Status != "" && !seenStatus[p.Status] {
			seenStatus[p.Status] = true
			statuses = append(statuses, p.Status)
		}
	}
	return categories, technologies, industries, statuses
}

// HasActiveFilters reports whether any filter dimension is set.
func HasActiveFilters(filters FilterState) bool {
	return ActiveFilterCount(filters) > 0
}

// ActiveFilterCount counts the selected filter values across all
// dimensions.
func ActiveFilterCount(filters FilterState) int {
	return len(filters.Category) + len(filters.Technology) + len(filters.Industry) + len(filters.Status)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func hasMatchingTech(stack, wanted []string) bool {
	for _, tech := range wanted {
		techLower := strings.ToLower(tech)
		for _, projectTech := range stack {
			if strings.Contains(strings.ToLower(projectTech), techLower) {
				return true
			}
		}
	}
	return false
}

// completionTime parses the record's completion date, falling back to
// the epoch for records without one so they sink in date sorts.
func completionTime(p ProjectRecord) time.Time {
	t, err := time.Parse("2006-01-02", p.CompletionDate)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}

func categoryKey(p ProjectRecord) string {
	if p.Category == "" {
		return "zzz"
	}
	return p.Category
}

func statusOrder(status string) int {
	switch status {
	case StatusInProgress:
		return 0
	case StatusCompleted:
		return 1
	case StatusPlanned:
		return 2
	default:
		return 3
	}
}
