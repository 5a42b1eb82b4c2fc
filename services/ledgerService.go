package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pos-terminal/config"
	"pos-terminal/models"
	"pos-terminal/store"
)

const (
	ReceiptsHeader       = "ReceiptID, CustID, Date, TotalAmount"
	ReceiptDetailsHeader = "ReceiptID, ItemID, ItemName, Quantity, Price, Total"
)

var receiptIDPattern = regexp.MustCompile(`^R(\d+)$`)

var tracer = otel.Tracer("pos-terminal/services")

type CheckoutResult struct {
	Receipt models.Receipt
	Details []models.ReceiptDetail
}

type LedgerService interface {
	Load() error
	Recover(ctx context.Context) (bool, error)
	NextReceiptID() string
	Checkout(ctx context.Context, session *Session) (*CheckoutResult, error)
	Receipts() []models.Receipt
	Details() []models.ReceiptDetail
	DetailsFor(receiptID string) []models.ReceiptDetail
}

type LedgerOptions struct {
	Receipts *store.File
	Details  *store.File
	Journal  *store.Journal
	Catalog  CatalogService
	Limits   config.Limits
	Logger   *log.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type ledgerService struct {
	receiptsFile *store.File
	detailsFile  *store.File
	journal      *store.Journal
	catalog      CatalogService
	limits       config.Limits
	logger       *log.Logger
	clock        func() time.Time

	receipts []models.Receipt
	details  []models.ReceiptDetail
}

func NewLedgerService(opts LedgerOptions) LedgerService {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &ledgerService{
		receiptsFile: opts.Receipts,
		detailsFile:  opts.Details,
		journal:      opts.Journal,
		catalog:      opts.Catalog,
		limits:       opts.Limits,
		logger:       opts.Logger,
		clock:        clock,
	}
}

// Load reads both ledger files. Missing files are created empty.
func (s *ledgerService) Load() error {
	s.receipts = nil
	s.details = nil

	records, err := s.receiptsFile.ReadAll()
	switch {
	case errors.Is(err, os.ErrNotExist):
		if werr := s.receiptsFile.WriteAll(nil); werr != nil {
			return fmt.Errorf("create receipts file: %w", werr)
		}
	case err != nil:
		s.logger.Printf("Error loading receipts: %v", err)
	}
	for _, rec := range records {
		r, perr := parseReceipt(rec)
		if perr != nil {
			s.logger.Printf("Skipping receipt record %q: %v", strings.Join(rec, ","), perr)
			continue
		}
		s.receipts = append(s.receipts, r)
	}

	records, err = s.detailsFile.ReadAll()
	switch {
	case errors.Is(err, os.ErrNotExist):
		if werr := s.detailsFile.WriteAll(nil); werr != nil {
			return fmt.Errorf("create receipt details file: %w", werr)
		}
	case err != nil:
		s.logger.Printf("Error loading receipt details: %v", err)
	}
	for _, rec := range records {
		d, perr := parseDetail(rec)
		if perr != nil {
			s.logger.Printf("Skipping receipt detail record %q: %v", strings.Join(rec, ","), perr)
			continue
		}
		s.details = append(s.details, d)
	}

	return nil
}

// NextReceiptID returns R followed by one more than the highest numeric
// suffix seen, padded to three digits. Past R999 the id simply grows wider.
func (s *ledgerService) NextReceiptID() string {
	maxID := 0
	for _, r := range s.receipts {
		m := receiptIDPattern.FindStringSubmatch(r.ReceiptID)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("R%03d", maxID+1)
}

// Checkout turns the session cart into a receipt. The whole sale is written
// to the journal first; once that write succeeds the sale is committed and
// Recover can finish it after a crash. The cart is cleared once the sale is
// committed, even if applying it to the data files fails.
func (s *ledgerService) Checkout(ctx context.Context, session *Session) (*CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "ledger.Checkout")
	defer span.End()

	if session == nil || session.Customer == nil {
		return nil, ErrNoCustomer
	}
	if session.Cart == nil || session.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	if _, err := s.Recover(ctx); err != nil {
		return nil, err
	}

	// Staged quantities may have been checked against stock that a replayed
	// sale has since reduced.
	lines := session.Cart.Lines()
	for _, line := range lines {
		item, ok := s.catalog.FindByID(line.Item.ID)
		if !ok {
			return nil, fmt.Errorf("checkout item %d: %w", line.Item.ID, ErrItemNotFound)
		}
		if item.Stock < line.Quantity {
			return nil, &StockError{ItemID: item.ID, Requested: line.Quantity, Available: item.Stock}
		}
	}

	if len(s.receipts)+1 > s.limits.MaxReceipts || len(s.details)+len(lines) > s.limits.MaxReceiptDetails {
		return nil, ErrLedgerFull
	}

	now := s.clock()
	receipt := models.Receipt{
		ReceiptID:   s.NextReceiptID(),
		CustomerID:  session.Customer.ID,
		Date:        now.Format(models.DateLayout),
		TotalAmount: session.Cart.Total(),
	}

	details := make([]models.ReceiptDetail, 0, len(lines))
	targets := make([]store.StockTarget, 0, len(lines))
	for _, line := range lines {
		details = append(details, models.ReceiptDetail{
			ReceiptID: receipt.ReceiptID,
			ItemID:    line.Item.ID,
			ItemName:  line.Item.Name,
			Quantity:  line.Quantity,
			Price:     line.Item.Price,
			Total:     line.Subtotal(),
		})
		if item, ok := s.catalog.FindByID(line.Item.ID); ok {
			targets = append(targets, store.StockTarget{ItemID: item.ID, Stock: item.Stock - line.Quantity})
		}
	}

	span.SetAttributes(
		attribute.String("receipt.id", receipt.ReceiptID),
		attribute.Int("receipt.customer_id", receipt.CustomerID),
		attribute.Int("receipt.lines", len(details)),
		attribute.String("receipt.total", receipt.TotalAmount.StringFixed(2)),
	)

	entry := store.NewJournalEntry(receipt, details, targets, now)
	if err := s.journal.Write(entry); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "journal write failed")
		return nil, fmt.Errorf("checkout %s: %w", receipt.ReceiptID, err)
	}
	span.AddEvent("journal written", trace.WithAttributes(attribute.String("journal.id", entry.ID.String())))

	result := &CheckoutResult{Receipt: receipt, Details: details}
	session.Cart.Clear()

	if err := s.apply(receipt, details, lines); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "apply failed")
		s.logger.Printf("Checkout %s left in journal: %v", receipt.ReceiptID, err)
		return result, fmt.Errorf("%w: %s: %v", ErrCheckoutIncomplete, receipt.ReceiptID, err)
	}

	s.logger.Printf("Checkout %s customer=%d lines=%d total=%s", receipt.ReceiptID, receipt.CustomerID, len(details), receipt.TotalAmount.StringFixed(2))
	return result, nil
}

func (s *ledgerService) apply(receipt models.Receipt, details []models.ReceiptDetail, lines []models.CartLine) error {
	s.receipts = append(s.receipts, receipt)
	for i, line := range lines {
		s.details = append(s.details, details[i])
		if err := s.catalog.DecrementStock(line.Item.ID, line.Quantity); err != nil {
			return err
		}
	}
	if err := s.persist(); err != nil {
		return err
	}
	return s.journal.Clear()
}

// Recover finishes a checkout left in the journal by an earlier run. It
// reports whether an entry was replayed.
func (s *ledgerService) Recover(ctx context.Context) (bool, error) {
	entry, err := s.journal.Pending()
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}

	_, span := tracer.Start(ctx, "ledger.Recover", trace.WithAttributes(
		attribute.String("journal.id", entry.ID.String()),
		attribute.String("receipt.id", entry.Receipt.ReceiptID),
	))
	defer span.End()

	for _, t := range entry.Stock {
		if err := s.catalog.SetStock(t.ItemID, t.Stock); err != nil {
			span.RecordError(err)
			return false, fmt.Errorf("replay %s: %w", entry.Receipt.ReceiptID, err)
		}
	}

	if !s.hasReceipt(entry.Receipt.ReceiptID) {
		s.receipts = append(s.receipts, entry.Receipt)
	}
	for _, d := range entry.Details {
		if !s.hasDetail(d.ReceiptID, d.ItemID) {
			s.details = append(s.details, d)
		}
	}

	if err := s.persist(); err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("replay %s: %w", entry.Receipt.ReceiptID, err)
	}
	if err := s.journal.Clear(); err != nil {
		return false, err
	}

	s.logger.Printf("Recovered checkout %s from journal %s", entry.Receipt.ReceiptID, entry.ID)
	return true, nil
}

func (s *ledgerService) hasReceipt(id string) bool {
	for _, r := range s.receipts {
		if r.ReceiptID == id {
			return true
		}
	}
	return false
}

func (s *ledgerService) hasDetail(receiptID string, itemID int) bool {
	for _, d := range s.details {
		if d.ReceiptID == receiptID && d.ItemID == itemID {
			return true
		}
	}
	return false
}

func (s *ledgerService) persist() error {
	receipts := make([][]string, 0, len(s.receipts))
	for _, r := range s.receipts {
		receipts = append(receipts, []string{
			r.ReceiptID,
			strconv.Itoa(r.CustomerID),
			r.Date,
			r.TotalAmount.StringFixed(2),
		})
	}
	if err := s.receiptsFile.WriteAll(receipts); err != nil {
		return fmt.Errorf("save receipts: %w", err)
	}

	details := make([][]string, 0, len(s.details))
	for _, d := range s.details {
		details = append(details, []string{
			d.ReceiptID,
			strconv.Itoa(d.ItemID),
			d.ItemName,
			strconv.Itoa(d.Quantity),
			d.Price.StringFixed(2),
			d.Total.StringFixed(2),
		})
	}
	if err := s.detailsFile.WriteAll(details); err != nil {
		return fmt.Errorf("save receipt details: %w", err)
	}
	return nil
}

func (s *ledgerService) Receipts() []models.Receipt {
	out := make([]models.Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}

func (s *ledgerService) Details() []models.ReceiptDetail {
	out := make([]models.ReceiptDetail, len(s.details))
	copy(out, s.details)
	return out
}

func (s *ledgerService) DetailsFor(receiptID string) []models.ReceiptDetail {
	var out []models.ReceiptDetail
	for _, d := range s.details {
		if d.ReceiptID == receiptID {
			out = append(out, d)
		}
	}
	return out
}

func parseReceipt(rec []string) (models.Receipt, error) {
	if len(rec) < 4 {
		return models.Receipt{}, fmt.Errorf("want 4 fields, got %d", len(rec))
	}
	customerID, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return models.Receipt{}, fmt.Errorf("bad customer id %q", rec[1])
	}
	total, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
	if err != nil {
		return models.Receipt{}, fmt.Errorf("bad total %q", rec[3])
	}
	return models.Receipt{
		ReceiptID:   strings.TrimSpace(rec[0]),
		CustomerID:  customerID,
		Date:        strings.TrimSpace(rec[2]),
		TotalAmount: total,
	}, nil
}

// parseDetail accepts rows without the trailing total and derives it from price and quantity.
func parseDetail(rec []string) (models.ReceiptDetail, error) {
	if len(rec) < 5 {
		return models.ReceiptDetail{}, fmt.Errorf("want 6 fields, got %d", len(rec))
	}
	itemID, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return models.ReceiptDetail{}, fmt.Errorf("bad item id %q", rec[1])
	}
	qty, err := strconv.Atoi(strings.TrimSpace(rec[3]))
	if err != nil {
		return models.ReceiptDetail{}, fmt.Errorf("bad quantity %q", rec[3])
	}
	price, err := decimal.NewFromString(strings.TrimSpace(rec[4]))
	if err != nil {
		return models.ReceiptDetail{}, fmt.Errorf("bad price %q", rec[4])
	}

	total := price.Mul(decimal.NewFromInt(int64(qty)))
	if len(rec) > 5 {
		total, err = decimal.NewFromString(strings.TrimSpace(rec[5]))
		if err != nil {
			return models.ReceiptDetail{}, fmt.Errorf("bad total %q", rec[5])
		}
	}

	return models.ReceiptDetail{
		ReceiptID: strings.TrimSpace(rec[0]),
		ItemID:    itemID,
		ItemName:  strings.TrimSpace(rec[2]),
		Quantity:  qty,
		Price:     price,
		Total:     total,
	}, nil
}
