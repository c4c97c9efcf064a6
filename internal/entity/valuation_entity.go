package entity

import (
	"time"
)

// Valuation is the property-valuation record. Id is assigned by the
// database on first persist and never changes afterwards. CreatedAt is
// stamped by the service at creation time and never altered by updates.
type Valuation struct {
	Id          int64
	OwnerName   string
	OwnerMobile *string
	CarpetArea  *float64
	Possession  *string // free-form status label, e.g. "Ready", "Under Construction"
	Address     *string
	CreatedAt   time.Time
}
