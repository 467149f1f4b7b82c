package domain

import "fmt"

// Category is one of the fixed hiroba news categories. The numeric value
// matches the category segment in hiroba listing URLs.
type Category int

const (
	CategoryNews Category = iota
	CategoryEvents
	CategoryUpdates
	CategoryMaintenance
)

// Categories returns all known categories in listing order.
func Categories() []Category {
	return []Category{CategoryNews, CategoryEvents, CategoryUpdates, CategoryMaintenance}
}

func (c Category) String() string {
	switch c {
	case CategoryNews:
		return "news"
	case CategoryEvents:
		return "events"
	case CategoryUpdates:
		return "updates"
	case CategoryMaintenance:
		return "maintenance"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// JapaneseName returns the label hiroba uses for the category.
func (c Category) JapaneseName() string {
	switch c {
	case CategoryNews:
		return "ニュース"
	case CategoryEvents:
		return "イベント"
	case CategoryUpdates:
		return "アップデート"
	case CategoryMaintenance:
		return "メンテナンス/障害"
	}
	return ""
}

func (c Category) Valid() bool {
	return c >= CategoryNews && c <= CategoryMaintenance
}

// ParseCategory maps a category name to its Category value.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}
