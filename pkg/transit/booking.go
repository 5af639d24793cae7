package transit

// SeatUnassigned is the seat label recorded when the rider made no advisory
// seat selection. Historical ledger records that predate the seat column are
// read back with this value.
const SeatUnassigned = "Any"

// BookingEntry is one completed purchase. Entries are immutable once written
// to the ledger; the field order here is the column order of both the ledger
// file and the CSV export.
type BookingEntry struct {
	RouteName     string `csv:"name" json:"name" groups:"basic,detail"`
	Destination   string `csv:"destination" json:"destination" groups:"basic,detail"`
	Departure     string `csv:"departure" json:"departure" groups:"basic,detail"`
	BasePrice     int    `csv:"base_price" json:"base_price" groups:"detail"`
	LuggagePrice  int    `csv:"luggage_price" json:"luggage_price" groups:"detail"`
	TotalPrice    int    `csv:"total_price" json:"total_price" groups:"basic,detail"`
	PaymentMethod string `csv:"payment_method" json:"payment_method" groups:"detail"`
	Date          string `csv:"date" json:"date" groups:"basic,detail"`
	Username      string `csv:"user" json:"user" groups:"detail"`
	Seat          string `csv:"seat" json:"seat" groups:"basic,detail"`
}

// BookingDateLayout matches the timestamps written by every historical
// version of the ledger.
const BookingDateLayout = "2006-01-02 15:04"
