package ledger

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/illuminado/illuminado/pkg/transit"
)

// ExportCSV writes a complete tabular snapshot of the ledger: a header row
// in the ledger field order, one data row per booking. Pure read - the
// ledger itself is untouched.
func (l *Ledger) ExportCSV(path string) error {
	entries := l.Entries()

	file, err := os.Create(path)
	if err != nil {
		return transit.PersistenceError{Target: path, Err: err}
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&entries, file); err != nil {
		return transit.PersistenceError{Target: path, Err: err}
	}

	return nil
}
