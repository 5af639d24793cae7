package ledger

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/illuminado/illuminado/pkg/transit"
)

// LedgerFile is one record per line, pipe-delimited, in the BookingEntry
// field order. The trailing seat field is optional for records written
// before seat selection existed.
const LedgerFile = "booking_history.txt"

const (
	fieldSeparator = "|"
	minFields      = 9
)

// Ledger is the append-only record of completed purchases. Entries are never
// edited or removed; insertion order is chronological purchase order.
type Ledger struct {
	mutex sync.Mutex

	path    string
	entries []transit.BookingEntry
}

// Open loads the ledger from disk. Malformed records are skipped one by one
// rather than failing the whole load; a missing file starts an empty ledger.
func Open(path string) *Ledger {
	ledger := &Ledger{path: path}

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to open booking ledger, starting empty")
		}
		return ledger
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry, ok := parseRecord(line)
		if !ok {
			log.Warn().Str("record", line).Msg("Skipping malformed ledger record")
			continue
		}

		ledger.entries = append(ledger.entries, entry)
	}

	return ledger
}

// Append records a completed purchase, both in memory and on disk. A
// PersistenceError means the entry is held in memory but may not survive a
// restart.
func (l *Ledger) Append(entry transit.BookingEntry) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.entries = append(l.entries, entry)

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return transit.PersistenceError{Target: LedgerFile, Err: err}
	}
	defer file.Close()

	if _, err := file.WriteString(formatRecord(entry) + "\n"); err != nil {
		return transit.PersistenceError{Target: LedgerFile, Err: err}
	}

	return nil
}

// Entries returns a copy of every booking in chronological order.
func (l *Ledger) Entries() []transit.BookingEntry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	entries := []transit.BookingEntry{}
	copier.Copy(&entries, l.entries)
	return entries
}

// Recent returns up to count bookings, most recent first.
func (l *Ledger) Recent(count int) []transit.BookingEntry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if count <= 0 || count > len(l.entries) {
		count = len(l.entries)
	}

	recent := make([]transit.BookingEntry, 0, count)
	for i := len(l.entries) - 1; i >= len(l.entries)-count; i-- {
		recent = append(recent, l.entries[i])
	}
	return recent
}

// Len reports the number of recorded bookings.
func (l *Ledger) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return len(l.entries)
}

func parseRecord(line string) (transit.BookingEntry, bool) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < minFields {
		return transit.BookingEntry{}, false
	}

	basePrice, err := strconv.Atoi(fields[3])
	if err != nil {
		return transit.BookingEntry{}, false
	}
	luggagePrice, err := strconv.Atoi(fields[4])
	if err != nil {
		return transit.BookingEntry{}, false
	}
	totalPrice, err := strconv.Atoi(fields[5])
	if err != nil {
		return transit.BookingEntry{}, false
	}

	seat := transit.SeatUnassigned
	if len(fields) > minFields && fields[9] != "" {
		seat = fields[9]
	}

	return transit.BookingEntry{
		RouteName:     fields[0],
		Destination:   fields[1],
		Departure:     fields[2],
		BasePrice:     basePrice,
		LuggagePrice:  luggagePrice,
		TotalPrice:    totalPrice,
		PaymentMethod: fields[6],
		Date:          fields[7],
		Username:      fields[8],
		Seat:          seat,
	}, true
}

func formatRecord(entry transit.BookingEntry) string {
	return strings.Join([]string{
		entry.RouteName,
		entry.Destination,
		entry.Departure,
		fmt.Sprintf("%d", entry.BasePrice),
		fmt.Sprintf("%d", entry.LuggagePrice),
		fmt.Sprintf("%d", entry.TotalPrice),
		entry.PaymentMethod,
		entry.Date,
		entry.Username,
		entry.Seat,
	}, fieldSeparator)
}
