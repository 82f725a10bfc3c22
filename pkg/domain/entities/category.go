package entities

import (
	"sort"
	"strings"
)

// MeatCategory identifies a meat cut the host can put on the grill
type MeatCategory string

// SideCategory identifies a side dish
type SideCategory string

// Mode represents the party type requested by the host
type Mode int

const (
	Standard Mode = iota
	Full
)

// String method for Mode enum
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// ParseMode maps a party type string to a Mode. Anything other than a full
// party selects Standard.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "completo", "complete":
		return Full
	default:
		return Standard
	}
}

// NormalizeCategoryID trims and lower-cases a category identifier
func NormalizeCategoryID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// SortMeats sorts meat categories in place and returns the slice
func SortMeats(meats []MeatCategory) []MeatCategory {
	sort.Slice(meats, func(i, j int) bool { return meats[i] < meats[j] })
	return meats
}

// SortSides sorts side categories in place and returns the slice
func SortSides(sides []SideCategory) []SideCategory {
	sort.Slice(sides, func(i, j int) bool { return sides[i] < sides[j] })
	return sides
}
