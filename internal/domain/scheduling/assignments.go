package scheduling

import (
	"fmt"

	"fotoeventos/internal/domain/entities"
)

// Assign binds one unit of an item's quantity to a dated slot. Two units of
// the same item may share a date. Fails with CapacityExceededError once the
// item has as many assignments as its quantity.
func (s *Session) Assign(itemID, date string) error {
	item, ok := s.findItem(itemID)
	if !ok {
		return ErrUnknownItem
	}
	if !s.hasDate(date) {
		return fmt.Errorf("%w: %q", ErrUnknownWorkDate, date)
	}
	if s.countAssignmentsOf(itemID) >= item.Quantity {
		return &CapacityExceededError{ItemID: itemID, Limit: item.Quantity}
	}
	s.assignments = append(s.assignments, entities.Assignment{ItemID: itemID, WorkDate: date})
	s.revision++
	return nil
}

// Unassign removes the most recently added assignment of the item on the
// given date.
func (s *Session) Unassign(itemID, date string) error {
	if _, ok := s.findItem(itemID); !ok {
		return ErrUnknownItem
	}
	for i := len(s.assignments) - 1; i >= 0; i-- {
		a := s.assignments[i]
		if a.ItemID == itemID && a.WorkDate == date {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			s.revision++
			return nil
		}
	}
	return ErrNotAssigned
}

// AutoFill is the fallback used by single-day and low-day-count flows: every
// item that has no explicit assignment yet gets its quantity distributed
// over the dated slots in ascending order, wrapping around when the quantity
// exceeds the dated slot count. Items the operator already touched are left
// alone.
func (s *Session) AutoFill() {
	dated := s.datedValues()
	if len(dated) == 0 {
		return
	}
	filled := false
	for _, it := range s.items {
		if s.countAssignmentsOf(it.ID) > 0 {
			continue
		}
		for u := 0; u < it.Quantity; u++ {
			s.assignments = append(s.assignments, entities.Assignment{
				ItemID:   it.ID,
				WorkDate: dated[u%len(dated)],
			})
			filled = true
		}
	}
	if filled {
		s.revision++
	}
}

// ValidateCoverage is the submit-time check. It passes only when every item
// has exactly quantity assignments and every slot (dated or not) carries at
// least one assignment. For events longer than two days it fails early with
// InsufficientQuantityError when full date coverage is structurally
// impossible.
func (s *Session) ValidateCoverage() error {
	if s.dayCount > 2 {
		total := 0
		for _, it := range s.items {
			total += it.Quantity
		}
		if total < s.dayCount {
			return &InsufficientQuantityError{TotalQuantity: total, DayCount: s.dayCount}
		}
	}

	var issues []CoverageIssue

	perItem := make(map[string]int, len(s.items))
	perDate := make(map[string]int, len(s.dates))
	for _, a := range s.assignments {
		perItem[a.ItemID]++
		perDate[a.WorkDate]++
	}

	for _, it := range s.items {
		if got := perItem[it.ID]; got != it.Quantity {
			issues = append(issues, CoverageIssue{
				ItemID:   it.ID,
				Assigned: got,
				Required: it.Quantity,
			})
		}
	}

	for _, d := range s.dates {
		if d.Date != "" && perDate[d.Date] > 0 {
			continue
		}
		// A slot without a date can never be covered and counts as a day
		// with no service assigned.
		issues = append(issues, CoverageIssue{
			WorkDate: d.Date,
			Position: d.Position,
			Required: 1,
		})
	}

	if len(issues) > 0 {
		return &IncompleteCoverageError{Issues: issues}
	}
	return nil
}

// truncateAssignments drops an item's newest assignments until at most
// limit remain.
func (s *Session) truncateAssignments(itemID string, limit int) {
	if s.countAssignmentsOf(itemID) <= limit {
		return
	}
	excess := s.countAssignmentsOf(itemID) - limit
	for i := len(s.assignments) - 1; i >= 0 && excess > 0; i-- {
		if s.assignments[i].ItemID == itemID {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			excess--
		}
	}
}

func (s *Session) countAssignmentsOf(itemID string) int {
	n := 0
	for _, a := range s.assignments {
		if a.ItemID == itemID {
			n++
		}
	}
	return n
}

// datedValues returns the non-empty date values in ascending order.
func (s *Session) datedValues() []string {
	out := make([]string, 0, len(s.dates))
	for _, d := range s.dates {
		if d.Date != "" {
			out = append(out, d.Date)
		}
	}
	return out
}
