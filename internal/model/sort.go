package model

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption задает порядок отображения списка ссылок
type SortOption string

const (
	SortTitleAsc   SortOption = "title-asc"
	SortTitleDesc  SortOption = "title-desc"
	SortDateNewest SortOption = "date-newest"
	SortDateOldest SortOption = "date-oldest"
	SortClicksHigh SortOption = "clicks-high"
	SortClicksLow  SortOption = "clicks-low"
	SortActive     SortOption = "active"
	SortInactive   SortOption = "inactive"

	// DefaultSort совпадает с порядком, в котором хранилище возвращает ссылки
	DefaultSort = SortDateNewest

	untitledLink = "Untitled Link"
)

type comparator func(c *collate.Collator, a, b Link) int

var comparators = map[SortOption]comparator{
	SortTitleAsc: func(c *collate.Collator, a, b Link) int {
		return c.CompareString(displayTitle(a), displayTitle(b))
	},
	SortTitleDesc: func(c *collate.Collator, a, b Link) int {
		return c.CompareString(displayTitle(b), displayTitle(a))
	},
	SortDateNewest: func(_ *collate.Collator, a, b Link) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	},
	SortDateOldest: func(_ *collate.Collator, a, b Link) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	},
	SortClicksHigh: func(_ *collate.Collator, a, b Link) int {
		return cmp.Compare(b.ClickCount, a.ClickCount)
	},
	SortClicksLow: func(_ *collate.Collator, a, b Link) int {
		return cmp.Compare(a.ClickCount, b.ClickCount)
	},
	SortActive: func(_ *collate.Collator, a, b Link) int {
		return compareBool(b.IsActive, a.IsActive)
	},
	SortInactive: func(_ *collate.Collator, a, b Link) int {
		return compareBool(a.IsActive, b.IsActive)
	},
}

// ParseSortOption разбирает ключ сортировки; пустая строка означает DefaultSort
func ParseSortOption(value string) (SortOption, bool) {
	if value == "" {
		return DefaultSort, true
	}
	option := SortOption(value)
	_, ok := comparators[option]
	return option, ok
}

// SortLinks возвращает отсортированную копию links.
// Сортировка стабильная: при равенстве сохраняется исходный порядок.
func SortLinks(links []Link, option SortOption) []Link {
	sorted := slices.Clone(links)
	compare, ok := comparators[option]
	if !ok {
		return sorted
	}
	// Collator хранит внутренние буферы, поэтому создается на каждый вызов
	collator := collate.New(language.English)
	slices.SortStableFunc(sorted, func(a, b Link) int {
		return compare(collator, a, b)
	})
	return sorted
}

func displayTitle(l Link) string {
	if l.Title == nil || *l.Title == "" {
		return untitledLink
	}
	return *l.Title
}

// false < true
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
