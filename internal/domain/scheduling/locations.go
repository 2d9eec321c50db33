package scheduling

import (
	"fmt"
	"sort"
	"time"

	"fotoeventos/internal/domain/entities"

	"github.com/google/uuid"
)

// LocationInput carries the operator-entered fields of a location. Date
// binding and the principal flag are managed by the session.
type LocationInput struct {
	Name      string
	Address   string
	TimeOfDay string
	Notes     string
}

// AddLocation binds a new location to a dated slot. Fails with
// CapacityExceededError when the date already holds 6 locations.
func (s *Session) AddLocation(workDate string, in LocationInput) (entities.Location, error) {
	if !s.hasDate(workDate) {
		return entities.Location{}, fmt.Errorf("%w: %q", ErrUnknownWorkDate, workDate)
	}
	if in.TimeOfDay != "" {
		if _, err := time.Parse(timeLayout, in.TimeOfDay); err != nil {
			return entities.Location{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, in.TimeOfDay)
		}
	}
	if s.countLocationsOn(workDate) >= entities.MaxLocationsPerDate {
		return entities.Location{}, &CapacityExceededError{WorkDate: workDate, Limit: entities.MaxLocationsPerDate}
	}

	loc := entities.Location{
		ID:        uuid.NewString(),
		WorkDate:  workDate,
		Name:      in.Name,
		Address:   in.Address,
		TimeOfDay: in.TimeOfDay,
		Notes:     in.Notes,
	}
	s.locations = append(s.locations, loc)
	s.recomputePrincipals()
	s.revision++
	return s.locationByID(loc.ID), nil
}

// UpdateLocation edits a location's operator-entered fields in place. The
// date binding is not editable here; moving a whole day goes through the
// date-edit protocol.
func (s *Session) UpdateLocation(id string, in LocationInput) (entities.Location, error) {
	if in.TimeOfDay != "" {
		if _, err := time.Parse(timeLayout, in.TimeOfDay); err != nil {
			return entities.Location{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, in.TimeOfDay)
		}
	}
	for i := range s.locations {
		if s.locations[i].ID != id {
			continue
		}
		s.locations[i].Name = in.Name
		s.locations[i].Address = in.Address
		s.locations[i].TimeOfDay = in.TimeOfDay
		s.locations[i].Notes = in.Notes
		s.recomputePrincipals()
		s.revision++
		return s.locationByID(id), nil
	}
	return entities.Location{}, ErrUnknownLocation
}

// RemoveLocation deletes a location. Removing the last location of a date is
// allowed; the date then fails coverage at submit time.
func (s *Session) RemoveLocation(id string) error {
	for i, l := range s.locations {
		if l.ID == id {
			s.locations = append(s.locations[:i], s.locations[i+1:]...)
			s.recomputePrincipals()
			s.revision++
			return nil
		}
	}
	return ErrUnknownLocation
}

// DuplicateLocation copies a location's fields onto a (possibly different)
// target date, subject to the same capacity check. The principal flag is not
// copied; it is re-derived from position.
func (s *Session) DuplicateLocation(id, targetDate string) (entities.Location, error) {
	src, ok := s.findLocation(id)
	if !ok {
		return entities.Location{}, ErrUnknownLocation
	}
	if !s.hasDate(targetDate) {
		return entities.Location{}, fmt.Errorf("%w: %q", ErrUnknownWorkDate, targetDate)
	}
	if s.countLocationsOn(targetDate) >= entities.MaxLocationsPerDate {
		return entities.Location{}, &CapacityExceededError{WorkDate: targetDate, Limit: entities.MaxLocationsPerDate}
	}

	dup := entities.Location{
		ID:        uuid.NewString(),
		WorkDate:  targetDate,
		Name:      src.Name,
		Address:   src.Address,
		TimeOfDay: src.TimeOfDay,
		Notes:     src.Notes,
	}
	s.locations = append(s.locations, dup)
	s.recomputePrincipals()
	s.revision++
	return s.locationByID(dup.ID), nil
}

// Locations returns every location in display order: slots chronologically,
// then time of day ascending within a date, locations without a time last,
// insertion order breaking ties. Principal flags are current.
func (s *Session) Locations() []entities.Location {
	out := make([]entities.Location, len(s.locations))
	copy(out, s.locations)
	sortLocationsForDisplay(out, s.dates)
	return out
}

// LocationsForDate returns the display-ordered locations of one date.
func (s *Session) LocationsForDate(date string) []entities.Location {
	all := s.Locations()
	out := make([]entities.Location, 0, entities.MaxLocationsPerDate)
	for _, l := range all {
		if l.WorkDate == date {
			out = append(out, l)
		}
	}
	return out
}

// recomputePrincipals marks exactly the earliest principalMin locations in
// display order as principal. Derived on every mutation, never set manually.
func (s *Session) recomputePrincipals() {
	ordered := make([]entities.Location, len(s.locations))
	copy(ordered, s.locations)
	sortLocationsForDisplay(ordered, s.dates)

	principal := make(map[string]bool, s.principalMin)
	for i := 0; i < len(ordered) && i < s.principalMin; i++ {
		principal[ordered[i].ID] = true
	}
	for i := range s.locations {
		s.locations[i].Principal = principal[s.locations[i].ID]
	}
}

func (s *Session) hasDate(date string) bool {
	if date == "" {
		return false
	}
	for _, d := range s.dates {
		if d.Date == date {
			return true
		}
	}
	return false
}

func (s *Session) findLocation(id string) (entities.Location, bool) {
	for _, l := range s.locations {
		if l.ID == id {
			return l, true
		}
	}
	return entities.Location{}, false
}

func (s *Session) locationByID(id string) entities.Location {
	l, _ := s.findLocation(id)
	return l
}

// sortLocationsForDisplay orders locations by their date's slot position,
// then time of day ascending (missing times last), preserving insertion
// order for ties.
func sortLocationsForDisplay(locations []entities.Location, dates []entities.WorkDate) {
	pos := make(map[string]int, len(dates))
	for _, d := range dates {
		if d.Date != "" {
			pos[d.Date] = d.Position
		}
	}
	sort.SliceStable(locations, func(i, j int) bool {
		pi, pj := pos[locations[i].WorkDate], pos[locations[j].WorkDate]
		if pi != pj {
			return pi < pj
		}
		ti, tj := locations[i].TimeOfDay, locations[j].TimeOfDay
		if (ti == "") != (tj == "") {
			return tj == ""
		}
		return ti < tj
	})
}
