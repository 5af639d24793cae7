package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/illuminado/illuminado/pkg/transit"
)

func testEntry(i int) transit.BookingEntry {
	return transit.BookingEntry{
		RouteName:     "Express A - Kayonza",
		Destination:   "East",
		Departure:     "06:00",
		BasePrice:     2500,
		LuggagePrice:  500,
		TotalPrice:    3000,
		PaymentMethod: "MTN Mobile Money",
		Date:          fmt.Sprintf("2025-01-01 08:%02d", i),
		Username:      "alice",
		Seat:          transit.SeatUnassigned,
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), LedgerFile)

	first := Open(path)
	for i := 0; i < 5; i++ {
		if err := first.Append(testEntry(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	reloaded := Open(path)
	if reloaded.Len() != 5 {
		t.Fatalf("expected 5 entries after reload, got %d", reloaded.Len())
	}

	if !reflect.DeepEqual(first.Entries(), reloaded.Entries()) {
		t.Fatalf("reload mismatch:\n%v\nvs\n%v", first.Entries(), reloaded.Entries())
	}

	// Chronological order preserved.
	for i, entry := range reloaded.Entries() {
		if entry.Date != testEntry(i).Date {
			t.Fatalf("entry %d out of order: %s", i, entry.Date)
		}
	}
}

func TestOpenSkipsMalformedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), LedgerFile)

	contents := "Express A|East|06:00|2500|500|3000|MTN Mobile Money|2025-01-01 08:00|alice|12A\n" +
		"too|few|fields\n" +
		"Express B|West|07:00|notanumber|0|2000|Airtel Money|2025-01-01 09:00|bob|Any\n" +
		"Express C|South|05:45|2200|0|2200|Tigo Cash|2025-01-01 10:00|carol|3B\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write ledger: %v", err)
	}

	ledger := Open(path)
	if ledger.Len() != 2 {
		t.Fatalf("expected 2 surviving entries, got %d", ledger.Len())
	}

	entries := ledger.Entries()
	if entries[0].RouteName != "Express A" || entries[1].RouteName != "Express C" {
		t.Fatalf("wrong entries survived: %v", entries)
	}
}

func TestOpenDefaultsMissingSeat(t *testing.T) {
	path := filepath.Join(t.TempDir(), LedgerFile)

	// Nine-field record from before seat selection existed.
	contents := "Express A|East|06:00|2500|0|2500|MTN Mobile Money|2024-06-01 08:00|alice\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write ledger: %v", err)
	}

	ledger := Open(path)
	if ledger.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", ledger.Len())
	}

	if seat := ledger.Entries()[0].Seat; seat != transit.SeatUnassigned {
		t.Fatalf("expected seat %q, got %q", transit.SeatUnassigned, seat)
	}
}

func TestRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), LedgerFile)

	ledger := Open(path)
	for i := 0; i < 6; i++ {
		if err := ledger.Append(testEntry(i)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent := ledger.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	if recent[0].Date != testEntry(5).Date || recent[2].Date != testEntry(3).Date {
		t.Fatalf("recent not in reverse chronological order: %v", recent)
	}

	if len(ledger.Recent(0)) != 6 {
		t.Fatal("count 0 should return everything")
	}
}

func TestAppendPersistenceFailure(t *testing.T) {
	ledger := Open(filepath.Join(os.DevNull, LedgerFile))

	err := ledger.Append(testEntry(0))
	if !transit.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}

	// Entry kept in memory despite the failed write.
	if ledger.Len() != 1 {
		t.Fatalf("expected in-memory entry, got %d", ledger.Len())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), LedgerFile)

	ledger := Open(path)
	if err := ledger.Append(testEntry(0)); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries := ledger.Entries()
	entries[0].TotalPrice = 1

	if ledger.Entries()[0].TotalPrice != 3000 {
		t.Fatal("caller mutation leaked into the ledger")
	}
}
