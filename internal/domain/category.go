package domain

import (
	"fmt"
	"strings"
)

// Category is a room class. The set is closed: rooms are sold as one of
// three classes, and persisted records reference them by their canonical
// uppercase label.
type Category string

const (
	CategoryStandard Category = "STANDARD"
	CategoryDeluxe   Category = "DELUXE"
	CategorySuite    Category = "SUITE"
)

// Categories returns all room categories in display order.
func Categories() []Category {
	return []Category{CategoryStandard, CategoryDeluxe, CategorySuite}
}

// ParseCategory maps a stored or user-supplied label to a Category.
// The label is trimmed and case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryStandard:
		return CategoryStandard, nil
	case CategoryDeluxe:
		return CategoryDeluxe, nil
	case CategorySuite:
		return CategorySuite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}
