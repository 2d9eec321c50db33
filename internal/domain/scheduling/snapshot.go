package scheduling

import (
	"sort"

	"fotoeventos/internal/domain/entities"
)

// Snapshot is an immutable, deep, order-normalized copy of session state.
// One is captured at load time as the diff baseline; Diff takes two of them
// and never mutates either.
//
// Normalization: dates by value, locations and items by ID, assignments by
// (item, date) pair, so two snapshots of equal state compare equal
// regardless of insertion order.
type Snapshot struct {
	SessionID   string
	Header      Header
	WorkDates   []entities.WorkDate
	Locations   []entities.Location
	Items       []entities.ServiceLineItem
	Assignments []entities.Assignment
}

// Snapshot captures the current state. The caller owns the copy; later
// session mutations do not leak into it.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		SessionID:   s.id,
		Header:      s.header,
		WorkDates:   make([]entities.WorkDate, len(s.dates)),
		Locations:   make([]entities.Location, len(s.locations)),
		Items:       make([]entities.ServiceLineItem, len(s.items)),
		Assignments: make([]entities.Assignment, len(s.assignments)),
	}
	copy(snap.WorkDates, s.dates)
	copy(snap.Locations, s.locations)
	copy(snap.Items, s.items)
	copy(snap.Assignments, s.assignments)

	sort.SliceStable(snap.WorkDates, func(i, j int) bool {
		return snap.WorkDates[i].Date < snap.WorkDates[j].Date
	})
	sort.SliceStable(snap.Locations, func(i, j int) bool {
		return snap.Locations[i].ID < snap.Locations[j].ID
	})
	sort.SliceStable(snap.Items, func(i, j int) bool {
		return snap.Items[i].ID < snap.Items[j].ID
	})
	sort.SliceStable(snap.Assignments, func(i, j int) bool {
		if snap.Assignments[i].ItemID != snap.Assignments[j].ItemID {
			return snap.Assignments[i].ItemID < snap.Assignments[j].ItemID
		}
		return snap.Assignments[i].WorkDate < snap.Assignments[j].WorkDate
	})
	return snap
}
