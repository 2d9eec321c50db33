package scheduling

import (
	"fmt"
	"sort"

	"fotoeventos/internal/domain/entities"
)

// Severity classifies one difference between baseline and current state.
//
// Weak changes are cosmetic (display-only text); strong changes affect date,
// time, address, money, quantity or item identity/presence, and require
// explicit operator confirmation before overwriting data a contract may
// already depend on.
type Severity string

const (
	SeverityWeak   Severity = "weak"
	SeverityStrong Severity = "strong"
)

// DiffEntry is one human-readable difference.
type DiffEntry struct {
	Label    string   `json:"label"`
	Before   string   `json:"before"`
	After    string   `json:"after"`
	Severity Severity `json:"severity"`
}

// DiffReport is the result of comparing two snapshots of the same session.
type DiffReport struct {
	HasStrongChange bool        `json:"has_strong_change"`
	Entries         []DiffEntry `json:"entries"`
}

// Diff compares a baseline snapshot against the current one, field by field,
// and classifies every difference. It is pure: neither snapshot is mutated
// and identical inputs always produce identical output.
func Diff(baseline, current *Snapshot) (*DiffReport, error) {
	if baseline == nil || current == nil || baseline.SessionID != current.SessionID {
		var b, c string
		if baseline != nil {
			b = baseline.SessionID
		}
		if current != nil {
			c = current.SessionID
		}
		return nil, &StaleSnapshotError{BaselineSession: b, CurrentSession: c}
	}

	d := &differ{}
	d.header(baseline.Header, current.Header)
	d.workDates(baseline.WorkDates, current.WorkDates)
	d.locations(baseline.Locations, current.Locations)
	d.items(baseline.Items, current.Items)
	d.assignments(baseline.Assignments, current.Assignments)

	report := &DiffReport{Entries: d.entries}
	for _, e := range d.entries {
		if e.Severity == SeverityStrong {
			report.HasStrongChange = true
			break
		}
	}
	return report, nil
}

type differ struct {
	entries []DiffEntry
}

func (d *differ) add(label, before, after string, sev Severity) {
	d.entries = append(d.entries, DiffEntry{Label: label, Before: before, After: after, Severity: sev})
}

func (d *differ) field(label, before, after string, sev Severity) {
	if before != after {
		d.add(label, before, after, sev)
	}
}

func (d *differ) header(b, c Header) {
	d.field("client name", b.ClientName, c.ClientName, SeverityWeak)
	d.field("event name", b.EventName, c.EventName, SeverityWeak)
	d.field("event type", b.EventType, c.EventType, SeverityWeak)
	d.field("notes", b.Notes, c.Notes, SeverityWeak)
}

func (d *differ) workDates(b, c []entities.WorkDate) {
	before := dateCounts(b)
	after := dateCounts(c)
	for _, date := range sortedKeys(before) {
		if after[date] < before[date] {
			d.add("work date removed", date, "", SeverityStrong)
		}
	}
	for _, date := range sortedKeys(after) {
		if before[date] < after[date] {
			d.add("work date added", "", date, SeverityStrong)
		}
	}
	// Unset slots have no date value but still change the day count.
	d.field("day count", fmt.Sprint(len(b)), fmt.Sprint(len(c)), SeverityStrong)
}

func (d *differ) locations(b, c []entities.Location) {
	after := make(map[string]entities.Location, len(c))
	for _, l := range c {
		after[l.ID] = l
	}

	for _, old := range b {
		cur, ok := after[old.ID]
		if !ok {
			d.add(fmt.Sprintf("location %q removed", old.Name), describeLocation(old), "", SeverityStrong)
			continue
		}
		d.field(fmt.Sprintf("location %q name", old.Name), old.Name, cur.Name, SeverityWeak)
		d.field(fmt.Sprintf("location %q notes", old.Name), old.Notes, cur.Notes, SeverityWeak)
		d.field(fmt.Sprintf("location %q address", old.Name), old.Address, cur.Address, SeverityStrong)
		d.field(fmt.Sprintf("location %q time", old.Name), old.TimeOfDay, cur.TimeOfDay, SeverityStrong)
		d.field(fmt.Sprintf("location %q work date", old.Name), old.WorkDate, cur.WorkDate, SeverityStrong)
		delete(after, old.ID)
	}

	added := make([]entities.Location, 0, len(after))
	for _, l := range after {
		added = append(added, l)
	}
	sort.Slice(added, func(i, j int) bool { return added[i].ID < added[j].ID })
	for _, l := range added {
		d.add(fmt.Sprintf("location %q added", l.Name), "", describeLocation(l), SeverityStrong)
	}
}

func (d *differ) items(b, c []entities.ServiceLineItem) {
	after := make(map[string]entities.ServiceLineItem, len(c))
	for _, it := range c {
		after[it.ID] = it
	}

	for _, old := range b {
		cur, ok := after[old.ID]
		if !ok {
			d.add(fmt.Sprintf("service %q removed", old.Title), describeItem(old), "", SeverityStrong)
			continue
		}
		d.field(fmt.Sprintf("service %q title", old.Title), old.Title, cur.Title, SeverityWeak)
		d.field(fmt.Sprintf("service %q description", old.Title), old.Description, cur.Description, SeverityWeak)
		d.field(fmt.Sprintf("service %q unit price", old.Title), money(old.UnitPrice), money(cur.UnitPrice), SeverityStrong)
		d.field(fmt.Sprintf("service %q base price", old.Title), money(old.BasePrice), money(cur.BasePrice), SeverityStrong)
		d.field(fmt.Sprintf("service %q quantity", old.Title), fmt.Sprint(old.Quantity), fmt.Sprint(cur.Quantity), SeverityStrong)
		d.field(fmt.Sprintf("service %q currency", old.Title), old.Currency, cur.Currency, SeverityStrong)
		d.field(fmt.Sprintf("service %q hours", old.Title), fmt.Sprint(old.Hours), fmt.Sprint(cur.Hours), SeverityStrong)
		d.field(fmt.Sprintf("service %q staff count", old.Title), fmt.Sprint(old.StaffCount), fmt.Sprint(cur.StaffCount), SeverityStrong)
		d.field(fmt.Sprintf("service %q catalog reference", old.Title), old.CatalogID, cur.CatalogID, SeverityStrong)
		delete(after, old.ID)
	}

	added := make([]entities.ServiceLineItem, 0, len(after))
	for _, it := range after {
		added = append(added, it)
	}
	sort.Slice(added, func(i, j int) bool { return added[i].ID < added[j].ID })
	for _, it := range added {
		d.add(fmt.Sprintf("service %q added", it.Title), "", describeItem(it), SeverityStrong)
	}
}

func (d *differ) assignments(b, c []entities.Assignment) {
	before := assignmentCounts(b)
	after := assignmentCounts(c)
	for _, key := range sortedKeys(before) {
		for n := after[key]; n < before[key]; n++ {
			d.add("assignment removed", key, "", SeverityStrong)
		}
	}
	for _, key := range sortedKeys(after) {
		for n := before[key]; n < after[key]; n++ {
			d.add("assignment added", "", key, SeverityStrong)
		}
	}
}

func dateCounts(dates []entities.WorkDate) map[string]int {
	out := make(map[string]int, len(dates))
	for _, d := range dates {
		if d.Date != "" {
			out[d.Date]++
		}
	}
	return out
}

func assignmentCounts(assignments []entities.Assignment) map[string]int {
	out := make(map[string]int, len(assignments))
	for _, a := range assignments {
		out[a.ItemID+" @ "+a.WorkDate]++
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func describeLocation(l entities.Location) string {
	return fmt.Sprintf("%s, %s (%s %s)", l.Name, l.Address, l.WorkDate, l.TimeOfDay)
}

func describeItem(it entities.ServiceLineItem) string {
	return fmt.Sprintf("%s x%d @ %s", it.Title, it.Quantity, money(it.UnitPrice))
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
