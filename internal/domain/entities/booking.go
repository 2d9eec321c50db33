package entities

// Booking records shared by quotes and orders.
//
// Domain notes:
//   - An event spans 1 to 7 work dates; each date holds at most 6 locations.
//   - Work dates are ISO calendar dates ("2006-01-02"). An empty Date marks a
//     slot the operator has not filled in yet.
//   - These records are plain data; every invariant over them is enforced by
//     the scheduling package, never by the records themselves.

const (
	// MaxWorkDates is the largest number of work dates an event may span.
	MaxWorkDates = 7
	// MaxLocationsPerDate is the location capacity of a single work date.
	MaxLocationsPerDate = 6
	// DiscountFloorRatio is the lowest unit price allowed, as a fraction of
	// the catalog base price (5% maximum discount).
	DiscountFloorRatio = 0.95
)

// WorkDate is one calendar day of the event plus its slot position.
type WorkDate struct {
	Date     string `json:"date"` // ISO yyyy-mm-dd, "" for an unset slot
	Position int    `json:"position"`
}

// Location is a venue/time-slot entry bound to exactly one work date.
//
// Principal is derived from display position by the scheduling package and is
// overwritten on every reorder; it is persisted only for rendering.
type Location struct {
	ID        string `json:"id"`
	WorkDate  string `json:"work_date"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	TimeOfDay string `json:"time_of_day"` // "15:04", "" if not set
	Notes     string `json:"notes"`
	Principal bool   `json:"principal"`
}

// ServiceLineItem is a selected, priced service with a quantity.
//
// The ID is generated once when the service is selected and is stable across
// edits; assignments reference it.
type ServiceLineItem struct {
	ID          string  `json:"id"`
	CatalogID   string  `json:"catalog_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	BasePrice   float64 `json:"base_price"`
	Quantity    int     `json:"quantity"`
	Currency    string  `json:"currency"`
	Hours       float64 `json:"hours"`
	StaffCount  int     `json:"staff_count"`
}

// Assignment binds one unit of a line item's quantity to one work date.
type Assignment struct {
	ItemID   string `json:"item_id"`
	WorkDate string `json:"work_date"`
}
