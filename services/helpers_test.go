package services

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pos-terminal/config"
	"pos-terminal/store"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newCatalog(t *testing.T, dir string, maxItems int) CatalogService {
	t.Helper()
	catalog := NewCatalogService(store.NewFile(filepath.Join(dir, "items.txt"), ItemsHeader), maxItems, discardLogger())
	require.NoError(t, catalog.Load())
	return catalog
}

type fixture struct {
	dir     string
	catalog CatalogService
	ledger  LedgerService
	journal *store.Journal
	now     time.Time
}

func testLimits() config.Limits {
	return config.Default().Limits
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithLimits(t, testLimits())
}

func newFixtureWithLimits(t *testing.T, limits config.Limits) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:     dir,
		catalog: newCatalog(t, dir, limits.MaxItems),
		journal: store.NewJournal(filepath.Join(dir, "checkout.journal")),
		now:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
	f.ledger = f.openLedger(t, limits)
	return f
}

func (f *fixture) openLedger(t *testing.T, limits config.Limits) LedgerService {
	t.Helper()
	ledger := NewLedgerService(LedgerOptions{
		Receipts: store.NewFile(filepath.Join(f.dir, "receipts.txt"), ReceiptsHeader),
		Details:  store.NewFile(filepath.Join(f.dir, "receipt_details.txt"), ReceiptDetailsHeader),
		Journal:  f.journal,
		Catalog:  f.catalog,
		Limits:   limits,
		Logger:   discardLogger(),
		Clock:    func() time.Time { return f.now },
	})
	require.NoError(t, ledger.Load())
	return ledger
}

var errDiskFull = errors.New("disk full")

// failingCatalog fails the failOn-th DecrementStock call and passes every
// other call through.
type failingCatalog struct {
	CatalogService
	failOn int
	calls  int
}

func (c *failingCatalog) DecrementStock(itemID, qty int) error {
	c.calls++
	if c.calls == c.failOn {
		return errDiskFull
	}
	return c.CatalogService.DecrementStock(itemID, qty)
}

// withFailingCatalog rewires the fixture ledger through a catalog whose
// failOn-th stock write fails.
func (f *fixture) withFailingCatalog(t *testing.T, failOn int) *failingCatalog {
	t.Helper()
	fc := &failingCatalog{CatalogService: f.catalog, failOn: failOn}
	f.catalog = fc
	f.ledger = f.openLedger(t, testLimits())
	return fc
}
