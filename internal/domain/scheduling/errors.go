package scheduling

import (
	"errors"
	"fmt"
)

// Every engine error is returned as a value and leaves the session in a
// valid, continuable state. Only IncompleteCoverage / InsufficientQuantity
// block a submit; the rest are advisory at the point of the offending action.

var (
	ErrInvalidDayCount  = errors.New("day count must be between 1 and 7")
	ErrInvalidDate      = errors.New("work date must be an ISO calendar date (yyyy-mm-dd)")
	ErrInvalidTimeOfDay = errors.New("time of day must be hh:mm")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrUnknownWorkDate  = errors.New("work date is not in the current set")
	ErrUnknownSlot      = errors.New("work date slot does not exist")
	ErrUnknownLocation  = errors.New("location not found")
	ErrUnknownItem      = errors.New("service line item not found")
	ErrNotAssigned      = errors.New("item is not assigned to this work date")
	ErrNoPendingChange  = errors.New("change request does not match the current session state")
	ErrBadSelection     = errors.New("discard selection does not match the requested contraction")
)

// CapacityExceededError reports a full work date (6 locations) or a fully
// assigned line item (quantity assignments).
type CapacityExceededError struct {
	WorkDate string // set when a date's location capacity was hit
	ItemID   string // set when an item's assignment capacity was hit
	Limit    int
}

func (e *CapacityExceededError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("item %s already has %d assignments", e.ItemID, e.Limit)
	}
	return fmt.Sprintf("work date %s already holds %d locations", e.WorkDate, e.Limit)
}

// DuplicateDateError reports a date edit that collides with another slot.
// The accompanying DateEdit request describes the migrate-or-revert choice.
type DuplicateDateError struct {
	Date string
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("work date %s is already in the set", e.Date)
}

// CoverageIssue identifies one uncovered line item or work date.
//
// ItemID is set for item-side violations, WorkDate/Position for date-side
// violations (WorkDate is empty when the uncovered slot has no date yet).
type CoverageIssue struct {
	ItemID   string `json:"item_id,omitempty"`
	WorkDate string `json:"work_date,omitempty"`
	Position int    `json:"position"`
	Assigned int    `json:"assigned"`
	Required int    `json:"required"`
}

// IncompleteCoverageError is raised only at submit time.
type IncompleteCoverageError struct {
	Issues []CoverageIssue
}

func (e *IncompleteCoverageError) Error() string {
	return fmt.Sprintf("coverage incomplete: %d issue(s)", len(e.Issues))
}

// InsufficientQuantityError reports a total quantity structurally too low to
// cover every work date.
type InsufficientQuantityError struct {
	TotalQuantity int
	DayCount      int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("total quantity %d cannot cover %d work dates", e.TotalQuantity, e.DayCount)
}

// PriceBelowFloorError reports a unit price clamped to the 95%-of-base floor.
// The clamp has already been applied when this error is returned.
type PriceBelowFloorError struct {
	ItemID    string
	Requested float64
	Floor     float64
}

func (e *PriceBelowFloorError) Error() string {
	return fmt.Sprintf("unit price %.2f for item %s is below the floor %.2f and was clamped", e.Requested, e.ItemID, e.Floor)
}

// StaleSnapshotError reports a diff invoked with snapshots from different
// sessions. Defensive check; a well-behaved caller never sees it.
type StaleSnapshotError struct {
	BaselineSession string
	CurrentSession  string
}

func (e *StaleSnapshotError) Error() string {
	return fmt.Sprintf("snapshot from session %s does not match session %s", e.BaselineSession, e.CurrentSession)
}
