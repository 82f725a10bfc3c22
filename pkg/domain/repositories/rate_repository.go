package repositories

import "github.com/vsinha/bbqplan/pkg/domain/entities"

// RateRepository provides the rate table used for planning
type RateRepository interface {
	// Current returns the active snapshot. Callers must treat it as read-only.
	Current() *entities.RateTable
	// Swap installs a new snapshot and returns the previous one
	Swap(rates *entities.RateTable) *entities.RateTable
}
