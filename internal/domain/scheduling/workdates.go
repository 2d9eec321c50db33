package scheduling

import (
	"fmt"
	"sort"
	"time"

	"fotoeventos/internal/domain/entities"
)

// RemovalCandidate annotates one discardable work date with what would be
// lost, so the operator can prefer removing empty days.
type RemovalCandidate struct {
	WorkDate        string `json:"work_date"`
	LocationCount   int    `json:"location_count"`
	AssignmentCount int    `json:"assignment_count"`
}

// DayCountChange describes a pending contraction. It is pure: nothing has
// been mutated yet, and discarding the request cancels the contraction.
//
// Required is how many dated slots the operator must pick from Candidates;
// unset slots are absorbed first since they carry nothing.
type DayCountChange struct {
	sessionID  string
	revision   int
	From       int                `json:"from"`
	To         int                `json:"to"`
	Required   int                `json:"required"`
	Candidates []RemovalCandidate `json:"candidates"`
}

// RequestDayCount changes the number of work date slots to n (1..7).
//
// Expansion and no-op changes apply immediately and return (nil, nil).
// A contraction that only sheds unset slots also applies immediately.
// Otherwise nothing is mutated and the returned request lists the removal
// candidates, in chronological order, for ApplyDayCount.
func (s *Session) RequestDayCount(n int) (*DayCountChange, error) {
	if n < 1 || n > entities.MaxWorkDates {
		return nil, ErrInvalidDayCount
	}

	switch {
	case n == s.dayCount:
		return nil, nil

	case n > s.dayCount:
		for i := s.dayCount; i < n; i++ {
			s.dates = append(s.dates, entities.WorkDate{})
		}
		s.dayCount = n
		renumber(s.dates)
		s.revision++
		return nil, nil
	}

	drop := s.dayCount - n
	unset := 0
	for _, d := range s.dates {
		if d.Date == "" {
			unset++
		}
	}

	if unset >= drop {
		// Only empty tail slots go away; no data is at stake.
		s.truncateUnset(drop)
		s.dayCount = n
		s.applyQuantityCaps()
		s.revision++
		return nil, nil
	}

	change := &DayCountChange{
		sessionID: s.id,
		revision:  s.revision,
		From:      s.dayCount,
		To:        n,
		Required:  drop - unset,
	}
	for _, d := range s.dates {
		if d.Date == "" {
			continue
		}
		change.Candidates = append(change.Candidates, RemovalCandidate{
			WorkDate:        d.Date,
			LocationCount:   s.countLocationsOn(d.Date),
			AssignmentCount: s.countAssignmentsOn(d.Date),
		})
	}
	return change, nil
}

// ApplyDayCount executes a contraction prepared by RequestDayCount with the
// operator's selection of dated slots to discard. Every location and
// assignment bound to a discarded date is removed. A request prepared before
// any other mutation of the session is stale and rejected.
func (s *Session) ApplyDayCount(req *DayCountChange, discard []string) error {
	if req == nil || req.sessionID != s.id || req.revision != s.revision {
		return ErrNoPendingChange
	}
	if len(discard) != req.Required {
		return ErrBadSelection
	}

	candidates := make(map[string]bool, len(req.Candidates))
	for _, c := range req.Candidates {
		candidates[c.WorkDate] = true
	}
	chosen := make(map[string]bool, len(discard))
	for _, d := range discard {
		if !candidates[d] || chosen[d] {
			return fmt.Errorf("%w: %q", ErrBadSelection, d)
		}
		chosen[d] = true
	}

	kept := s.dates[:0]
	for _, d := range s.dates {
		if d.Date == "" || chosen[d.Date] {
			continue
		}
		kept = append(kept, d)
	}
	s.dates = kept
	s.dayCount = req.To
	renumber(s.dates)

	for date := range chosen {
		s.dropDate(date)
	}
	s.applyQuantityCaps()
	s.recomputePrincipals()
	s.revision++
	return nil
}

// DateEdit describes an in-place edit of one slot's date value.
//
// When the new value collides with another slot, RequestDateEdit returns the
// request alongside a DuplicateDateError: the operator either confirms the
// bulk move of the old day's locations and assignments onto the existing
// date (ApplyDateEdit with migrate=true) or reverts (discards the request).
type DateEdit struct {
	sessionID       string
	revision        int
	Slot            int    `json:"slot"`
	OldDate         string `json:"old_date"`
	NewDate         string `json:"new_date"`
	LocationCount   int    `json:"location_count"`
	AssignmentCount int    `json:"assignment_count"`
}

// RequestDateEdit changes the date value of the slot at the given position.
//
// A non-colliding edit applies immediately, carrying the slot's locations and
// assignments to the new value, and returns (nil, nil). A colliding edit
// mutates nothing and returns the pending request with a DuplicateDateError.
func (s *Session) RequestDateEdit(slot int, newDate string) (*DateEdit, error) {
	if slot < 0 || slot >= len(s.dates) {
		return nil, ErrUnknownSlot
	}
	if _, err := time.Parse(dateLayout, newDate); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, newDate)
	}

	oldDate := s.dates[slot].Date
	if newDate == oldDate {
		return nil, nil
	}

	for i, d := range s.dates {
		if i != slot && d.Date == newDate {
			return &DateEdit{
				sessionID:       s.id,
				revision:        s.revision,
				Slot:            slot,
				OldDate:         oldDate,
				NewDate:         newDate,
				LocationCount:   s.countLocationsOn(oldDate),
				AssignmentCount: s.countAssignmentsOn(oldDate),
			}, &DuplicateDateError{Date: newDate}
		}
	}

	s.dates[slot].Date = newDate
	s.rebind(oldDate, newDate)
	sortWorkDates(s.dates)
	s.recomputePrincipals()
	s.revision++
	return nil, nil
}

// ApplyDateEdit resolves a colliding date edit. With migrate=false nothing
// changes (the edit was never applied). With migrate=true the old day's
// locations and assignments move onto the existing target date, subject to
// the target's location capacity, and the edited slot becomes unset. A
// request prepared before any other mutation of the session is stale and
// rejected.
func (s *Session) ApplyDateEdit(req *DateEdit, migrate bool) error {
	if req == nil || req.sessionID != s.id || req.revision != s.revision {
		return ErrNoPendingChange
	}
	if !migrate {
		return nil
	}

	merged := s.countLocationsOn(req.OldDate) + s.countLocationsOn(req.NewDate)
	if merged > entities.MaxLocationsPerDate {
		return &CapacityExceededError{WorkDate: req.NewDate, Limit: entities.MaxLocationsPerDate}
	}

	s.rebind(req.OldDate, req.NewDate)
	s.dates[req.Slot].Date = ""
	sortWorkDates(s.dates)
	s.recomputePrincipals()
	s.revision++
	return nil
}

// rebind moves every location and assignment from one date value to another.
func (s *Session) rebind(oldDate, newDate string) {
	if oldDate == "" {
		return
	}
	for i := range s.locations {
		if s.locations[i].WorkDate == oldDate {
			s.locations[i].WorkDate = newDate
		}
	}
	for i := range s.assignments {
		if s.assignments[i].WorkDate == oldDate {
			s.assignments[i].WorkDate = newDate
		}
	}
}

// dropDate removes every location and assignment bound to a discarded date.
func (s *Session) dropDate(date string) {
	locs := s.locations[:0]
	for _, l := range s.locations {
		if l.WorkDate != date {
			locs = append(locs, l)
		}
	}
	s.locations = locs

	asgs := s.assignments[:0]
	for _, a := range s.assignments {
		if a.WorkDate != date {
			asgs = append(asgs, a)
		}
	}
	s.assignments = asgs
}

// truncateUnset removes n unset slots from the tail of the slot list.
func (s *Session) truncateUnset(n int) {
	kept := make([]entities.WorkDate, 0, len(s.dates)-n)
	removed := 0
	for i := len(s.dates) - 1; i >= 0; i-- {
		if removed < n && s.dates[i].Date == "" {
			removed++
			continue
		}
		kept = append(kept, s.dates[i])
	}
	// kept was built back-to-front
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	s.dates = kept
	renumber(s.dates)
}

// applyQuantityCaps re-clamps every item quantity after a day count change
// and sheds excess assignments newest-first.
func (s *Session) applyQuantityCaps() {
	for i := range s.items {
		capped := capQuantity(s.items[i].Quantity, s.dayCount)
		if capped != s.items[i].Quantity {
			s.items[i].Quantity = capped
			s.truncateAssignments(s.items[i].ID, capped)
		}
	}
}

func (s *Session) countLocationsOn(date string) int {
	n := 0
	for _, l := range s.locations {
		if l.WorkDate == date {
			n++
		}
	}
	return n
}

func (s *Session) countAssignmentsOn(date string) int {
	n := 0
	for _, a := range s.assignments {
		if a.WorkDate == date {
			n++
		}
	}
	return n
}

// sortWorkDates orders slots chronologically with unset slots last and
// renumbers positions.
func sortWorkDates(dates []entities.WorkDate) {
	sort.SliceStable(dates, func(i, j int) bool {
		if dates[i].Date == "" {
			return false
		}
		if dates[j].Date == "" {
			return true
		}
		return dates[i].Date < dates[j].Date
	})
	renumber(dates)
}

func renumber(dates []entities.WorkDate) {
	for i := range dates {
		dates[i].Position = i
	}
}
