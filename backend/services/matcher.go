package services

import (
	"context"
	"sort"
	"strings"

	"mentorpath/backend/models"
	"mentorpath/backend/store"
)

// SearchCache is an optional result cache in front of the matcher. Both
// methods are fail-open: cache trouble is never surfaced to the caller.
type SearchCache interface {
	Get(ctx context.Context, prefs models.UserPreferences) ([]models.Course, bool)
	Set(ctx context.Context, prefs models.UserPreferences, courses []models.Course)
}

// Matcher filters and ranks the course catalog against user preferences.
type Matcher struct {
	Catalog store.CatalogStore
	Cache   SearchCache // nil disables caching
}

func NewMatcher(catalog store.CatalogStore, cache SearchCache) *Matcher {
	return &Matcher{Catalog: catalog, Cache: cache}
}

// SearchCourses runs the filter pipeline over the catalog and returns the
// survivors sorted by rating, best first. Each filter is skipped when its
// preference field is empty. An empty result is valid, not an error.
//
// Filter order: interests, skill level, platform, price. The filters
// commute; the order is kept for traceability against the original.
func (m *Matcher) SearchCourses(ctx context.Context, prefs models.UserPreferences) ([]models.Course, error) {
	if m.Cache != nil {
		if courses, ok := m.Cache.Get(ctx, prefs); ok {
			return courses, nil
		}
	}

	catalog, err := m.Catalog.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Course, 0, len(catalog))
	for _, course := range catalog {
		if !matchesInterests(course, prefs.Interests) {
			continue
		}
		if !matchesSkillLevel(course, prefs.SkillLevel) {
			continue
		}
		if !matchesPlatform(course, prefs.PreferredPlatforms) {
			continue
		}
		if !matchesPrice(course, prefs.PricePreference) {
			continue
		}
		matched = append(matched, course)
	}

	// Stable: ties keep catalog order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	if m.Cache != nil {
		m.Cache.Set(ctx, prefs, matched)
	}
	return matched, nil
}

// matchesInterests passes when any interest is a case-insensitive substring
// of any course topic.
func matchesInterests(course models.Course, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	for _, interest := range interests {
		needle := strings.ToLower(interest)
		for _, topic := range course.Topics {
			if strings.Contains(strings.ToLower(topic), needle) {
				return true
			}
		}
	}
	return false
}

// matchesSkillLevel widens monotonically: beginners only see beginner
// courses, intermediates also see beginner ones, advanced learners see
// everything. All-levels courses always pass.
func matchesSkillLevel(course models.Course, skillLevel string) bool {
	if skillLevel == "" || course.Level == models.LevelAllLevels {
		return true
	}
	switch skillLevel {
	case models.LevelBeginner:
		return course.Level == models.LevelBeginner
	case models.LevelIntermediate:
		return course.Level == models.LevelBeginner || course.Level == models.LevelIntermediate
	case models.LevelAdvanced:
		return true
	}
	return true
}

func matchesPlatform(course models.Course, platforms []string) bool {
	if len(platforms) == 0 {
		return true
	}
	for _, platform := range platforms {
		if strings.EqualFold(course.Platform, platform) {
			return true
		}
	}
	return false
}

func matchesPrice(course models.Course, pricePreference string) bool {
	switch pricePreference {
	case models.PriceFree:
		return !course.IsPaid
	case models.PricePaid:
		return course.IsPaid
	default: // "both" or unset
		return true
	}
}
