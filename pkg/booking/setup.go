package booking

import (
	"github.com/illuminado/illuminado/pkg/catalog"
	"github.com/illuminado/illuminado/pkg/inventory"
	"github.com/illuminado/illuminado/pkg/ledger"
	"github.com/illuminado/illuminado/pkg/profile"
	"github.com/illuminado/illuminado/pkg/storage"
)

// NewDefaultEngine wires an engine from the environment: the built-in
// catalog (plus overlay), and file-backed stores under ILLUMINADO_DATA_DIR.
func NewDefaultEngine() (*Engine, error) {
	files := storage.NewStoreFromEnvironment()

	inventoryStore, err := inventory.NewStore(catalog.Load(), files)
	if err != nil {
		return nil, err
	}

	bookingLedger := ledger.Open(files.Path(ledger.LedgerFile))
	profiles := profile.NewStore(files)

	return NewEngine(inventoryStore, bookingLedger, profiles), nil
}
