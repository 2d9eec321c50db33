package scheduling

import (
	"fmt"
	"time"

	"fotoeventos/internal/domain/entities"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Header holds the free-form fields of a quote/order that the engine carries
// through snapshots but never interprets.
type Header struct {
	ClientName string
	EventName  string
	EventType  string
	Notes      string
}

// Session is one in-progress edit of a multi-day booking. All operations are
// synchronous and single-threaded; a session is never shared across edits.
//
// Domain notes:
//   - Work date slots are kept sorted ascending, unset slots at the tail,
//     positions renumbered after every mutation.
//   - Locations, items and assignments preserve insertion order; display
//     order and principal flags are derived, never stored authoritative.
//   - The baseline snapshot is captured once at load and never mutated.
//   - Pending Request* changes are valid only against the exact state they
//     were prepared from: every mutation bumps the session revision and
//     invalidates them.
type Session struct {
	id           string
	revision     int
	header       Header
	dayCount     int
	dates        []entities.WorkDate
	locations    []entities.Location
	items        []entities.ServiceLineItem
	assignments  []entities.Assignment
	baseline     *Snapshot
	priceClamps  []PriceBelowFloorError
	principalMin int
}

// Option configures a session at load time.
type Option func(*Session)

// WithPrincipalMin sets how many leading locations are marked principal.
func WithPrincipalMin(k int) Option {
	return func(s *Session) {
		if k > 0 {
			s.principalMin = k
		}
	}
}

// NewSession opens an empty create-flow session with dayCount unset slots.
func NewSession(header Header, dayCount int, opts ...Option) (*Session, error) {
	dates := make([]entities.WorkDate, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		dates = append(dates, entities.WorkDate{Position: i})
	}
	return LoadSession(header, dates, nil, nil, nil, opts...)
}

// LoadSession opens an edit session over previously captured state, validates
// it once at the boundary, and takes the baseline snapshot used later by
// Diff. Unit prices below the discount floor are clamped; the clamps are
// reported by PriceClamps.
func LoadSession(header Header, dates []entities.WorkDate, locations []entities.Location, items []entities.ServiceLineItem, assignments []entities.Assignment, opts ...Option) (*Session, error) {
	s := &Session{
		id:           uuid.NewString(),
		header:       header,
		principalMin: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.replace(dates, locations, items, assignments); err != nil {
		return nil, err
	}

	s.baseline = s.Snapshot()
	return s, nil
}

// ReplaceState swaps the whole working state for a new one, running the same
// boundary validation as LoadSession. The baseline snapshot is kept, so a
// subsequent Diff compares the replacement against the loaded state. Used by
// callers that receive full payloads instead of driving individual edits.
func (s *Session) ReplaceState(header Header, dates []entities.WorkDate, locations []entities.Location, items []entities.ServiceLineItem, assignments []entities.Assignment) error {
	prevHeader := s.header
	s.header = header
	if err := s.replace(dates, locations, items, assignments); err != nil {
		s.header = prevHeader
		return err
	}
	return nil
}

// replace validates and installs a full state. On error the session is left
// untouched.
func (s *Session) replace(dates []entities.WorkDate, locations []entities.Location, items []entities.ServiceLineItem, assignments []entities.Assignment) error {
	if len(dates) < 1 || len(dates) > entities.MaxWorkDates {
		return ErrInvalidDayCount
	}

	// Dates: parseable, distinct, sorted ascending with unset slots last.
	newDates := make([]entities.WorkDate, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if d.Date != "" {
			if _, err := time.Parse(dateLayout, d.Date); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, d.Date)
			}
			if seen[d.Date] {
				return &DuplicateDateError{Date: d.Date}
			}
			seen[d.Date] = true
		}
		newDates = append(newDates, entities.WorkDate{Date: d.Date})
	}
	sortWorkDates(newDates)

	// Locations: known dates, per-date capacity, valid time of day.
	perDate := make(map[string]int, len(newDates))
	newLocations := make([]entities.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.WorkDate == "" || !seen[loc.WorkDate] {
			return fmt.Errorf("%w: location %q on %q", ErrUnknownWorkDate, loc.Name, loc.WorkDate)
		}
		if loc.TimeOfDay != "" {
			if _, err := time.Parse(timeLayout, loc.TimeOfDay); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, loc.TimeOfDay)
			}
		}
		perDate[loc.WorkDate]++
		if perDate[loc.WorkDate] > entities.MaxLocationsPerDate {
			return &CapacityExceededError{WorkDate: loc.WorkDate, Limit: entities.MaxLocationsPerDate}
		}
		if loc.ID == "" {
			loc.ID = uuid.NewString()
		}
		newLocations = append(newLocations, loc)
	}

	// Items: stable IDs, quantity capped by day count, prices clamped to the
	// discount floor.
	dayCount := len(newDates)
	clamps := make([]PriceBelowFloorError, 0)
	newItems := make([]entities.ServiceLineItem, 0, len(items))
	itemQty := make(map[string]int, len(items))
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %q", ErrInvalidQuantity, it.Title)
		}
		it.Quantity = capQuantity(it.Quantity, dayCount)
		if floor := priceFloor(it.BasePrice); it.UnitPrice < floor {
			clamps = append(clamps, PriceBelowFloorError{ItemID: it.ID, Requested: it.UnitPrice, Floor: floor})
			it.UnitPrice = floor
		}
		itemQty[it.ID] = it.Quantity
		newItems = append(newItems, it)
	}

	// Assignments: known item and date, never more than the item's quantity.
	// Excess entries are dropped newest-first, matching ChangeQuantity.
	perItem := make(map[string]int, len(newItems))
	newAssignments := make([]entities.Assignment, 0, len(assignments))
	for _, a := range assignments {
		qty, ok := itemQty[a.ItemID]
		if !ok {
			return fmt.Errorf("%w: assignment for %q", ErrUnknownItem, a.ItemID)
		}
		if !seen[a.WorkDate] {
			return fmt.Errorf("%w: assignment on %q", ErrUnknownWorkDate, a.WorkDate)
		}
		if perItem[a.ItemID] >= qty {
			continue
		}
		perItem[a.ItemID]++
		newAssignments = append(newAssignments, a)
	}

	s.dates = newDates
	s.dayCount = len(newDates)
	s.locations = newLocations
	s.items = newItems
	s.assignments = newAssignments
	s.priceClamps = clamps
	s.recomputePrincipals()
	s.revision++
	return nil
}

// ID identifies the session; snapshots carry it for the stale check.
func (s *Session) ID() string { return s.id }

// DayCount returns the current number of work date slots.
func (s *Session) DayCount() int { return s.dayCount }

// Header returns the free-form header fields.
func (s *Session) Header() Header { return s.header }

// SetHeader replaces the free-form header fields.
func (s *Session) SetHeader(h Header) {
	s.header = h
	s.revision++
}

// WorkDates returns the slots in ascending order, unset slots last.
func (s *Session) WorkDates() []entities.WorkDate {
	out := make([]entities.WorkDate, len(s.dates))
	copy(out, s.dates)
	return out
}

// Items returns the selected line items in insertion order.
func (s *Session) Items() []entities.ServiceLineItem {
	out := make([]entities.ServiceLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Assignments returns the assignment pairs in insertion order.
func (s *Session) Assignments() []entities.Assignment {
	out := make([]entities.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// Total sums unit price times quantity over all line items.
func (s *Session) Total() float64 {
	total := 0.0
	for _, it := range s.items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// PriceClamps reports the discount-floor clamps applied by the most recent
// LoadSession/ReplaceState.
func (s *Session) PriceClamps() []PriceBelowFloorError {
	out := make([]PriceBelowFloorError, len(s.priceClamps))
	copy(out, s.priceClamps)
	return out
}

// Baseline returns the snapshot captured when the session was loaded.
func (s *Session) Baseline() *Snapshot { return s.baseline }

func capQuantity(q, dayCount int) int {
	if dayCount <= 1 {
		return 1
	}
	if q > dayCount {
		return dayCount
	}
	return q
}

func priceFloor(basePrice float64) float64 {
	return basePrice * entities.DiscountFloorRatio
}
