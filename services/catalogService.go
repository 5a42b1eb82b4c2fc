package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"pos-terminal/models"
	"pos-terminal/seeders"
	"pos-terminal/store"
)

const ItemsHeader = "ItemID, ItemName, Price, Stock"

// ItemFinder is the read side of the catalog the cart needs.
type ItemFinder interface {
	FindByID(id int) (models.Item, bool)
}

type CatalogService interface {
	ItemFinder
	Load() error
	Search(query string) []models.Item
	All() []models.Item
	LowStock(threshold int) []models.Item
	DecrementStock(itemID, qty int) error
	SetStock(itemID, stock int) error
	Persist() error
}

type catalogService struct {
	file     *store.File
	maxItems int
	logger   *log.Logger
	items    []models.Item
}

func NewCatalogService(file *store.File, maxItems int, logger *log.Logger) CatalogService {
	return &catalogService{file: file, maxItems: maxItems, logger: logger}
}

// Load reads the catalog file. A missing or empty file is replaced by the
// default catalog. A file that fails to parse part way leaves the rows read
// before the failure.
func (s *catalogService) Load() error {
	s.items = nil

	records, err := s.file.ReadAll()
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s.seed()
	case err != nil:
		s.logger.Printf("Error loading items: %v", err)
	}

	for _, rec := range records {
		item, perr := parseItem(rec)
		if perr != nil {
			s.logger.Printf("Skipping item record %q: %v", strings.Join(rec, ","), perr)
			continue
		}
		if _, dup := s.FindByID(item.ID); dup {
			s.logger.Printf("Skipping duplicate item id %d", item.ID)
			continue
		}
		if len(s.items) >= s.maxItems {
			s.logger.Printf("Catalog limit %d reached, ignoring item %d", s.maxItems, item.ID)
			continue
		}
		s.items = append(s.items, item)
	}

	if err == nil && len(s.items) == 0 {
		return s.seed()
	}
	return nil
}

func (s *catalogService) seed() error {
	s.items = seeders.DefaultItems()
	if len(s.items) > s.maxItems {
		s.items = s.items[:s.maxItems]
	}
	if err := s.Persist(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	s.logger.Printf("Sample items data created in %s", s.file.Path)
	return nil
}

func (s *catalogService) FindByID(id int) (models.Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// Search matches query against the item name and the decimal id. Matching is case-sensitive.
func (s *catalogService) Search(query string) []models.Item {
	var results []models.Item
	for _, item := range s.items {
		if strings.Contains(item.Name, query) || strings.Contains(strconv.Itoa(item.ID), query) {
			results = append(results, item)
		}
	}
	return results
}

func (s *catalogService) All() []models.Item {
	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *catalogService) LowStock(threshold int) []models.Item {
	var low []models.Item
	for _, item := range s.items {
		if item.Stock < threshold {
			low = append(low, item)
		}
	}
	return low
}

// DecrementStock trusts the caller to have checked availability.
func (s *catalogService) DecrementStock(itemID, qty int) error {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Stock -= qty
			return s.Persist()
		}
	}
	return nil
}

func (s *catalogService) SetStock(itemID, stock int) error {
	for i := range s.items {
		if s.items[i].ID == itemID {
			if s.items[i].Stock == stock {
				return nil
			}
			s.items[i].Stock = stock
			return s.Persist()
		}
	}
	return nil
}

func (s *catalogService) Persist() error {
	records := make([][]string, 0, len(s.items))
	for _, item := range s.items {
		records = append(records, formatItem(item))
	}
	if err := s.file.WriteAll(records); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

func parseItem(rec []string) (models.Item, error) {
	if len(rec) < 4 {
		return models.Item{}, fmt.Errorf("want 4 fields, got %d", len(rec))
	}

	id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil || id <= 0 {
		return models.Item{}, fmt.Errorf("bad id %q", rec[0])
	}
	price, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
	if err != nil || price.IsNegative() {
		return models.Item{}, fmt.Errorf("bad price %q", rec[2])
	}
	stock, err := strconv.Atoi(strings.TrimSpace(rec[3]))
	if err != nil || stock < 0 {
		return models.Item{}, fmt.Errorf("bad stock %q", rec[3])
	}

	return models.Item{
		ID:    id,
		Name:  truncate(strings.TrimSpace(rec[1]), models.MaxNameLen),
		Price: price,
		Stock: stock,
	}, nil
}

func formatItem(item models.Item) []string {
	return []string{
		strconv.Itoa(item.ID),
		item.Name,
		item.Price.StringFixed(2),
		strconv.Itoa(item.Stock),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
