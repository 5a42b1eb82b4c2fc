package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"pos-terminal/models"
	"pos-terminal/seeders"
	"pos-terminal/store"
)

const CustomersHeader = "CustID, Name, Phone, Email, Address"

type DirectoryService interface {
	Load() error
	FindByID(id int) (models.Customer, bool)
	Search(query string) []models.Customer
	All() []models.Customer
	Create(input models.CustomerInput) (models.Customer, error)
	Persist() error
}

type directoryService struct {
	file         *store.File
	maxCustomers int
	logger       *log.Logger
	validate     *validator.Validate
	customers    []models.Customer
}

func NewDirectoryService(file *store.File, maxCustomers int, logger *log.Logger) DirectoryService {
	return &directoryService{
		file:         file,
		maxCustomers: maxCustomers,
		logger:       logger,
		validate:     validator.New(),
	}
}

func (s *directoryService) Load() error {
	s.customers = nil

	records, err := s.file.ReadAll()
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s.seed()
	case err != nil:
		s.logger.Printf("Error loading customers: %v", err)
	}

	for _, rec := range records {
		c, perr := parseCustomer(rec)
		if perr != nil {
			s.logger.Printf("Skipping customer record %q: %v", strings.Join(rec, ","), perr)
			continue
		}
		if _, dup := s.FindByID(c.ID); dup {
			s.logger.Printf("Skipping duplicate customer id %d", c.ID)
			continue
		}
		if len(s.customers) >= s.maxCustomers {
			s.logger.Printf("Directory limit %d reached, ignoring customer %d", s.maxCustomers, c.ID)
			continue
		}
		s.customers = append(s.customers, c)
	}

	if err == nil && len(s.customers) == 0 {
		return s.seed()
	}
	return nil
}

func (s *directoryService) seed() error {
	s.customers = seeders.DefaultCustomers()
	if len(s.customers) > s.maxCustomers {
		s.customers = s.customers[:s.maxCustomers]
	}
	if err := s.Persist(); err != nil {
		return fmt.Errorf("seed directory: %w", err)
	}
	s.logger.Printf("Sample customers data created in %s", s.file.Path)
	return nil
}

func (s *directoryService) FindByID(id int) (models.Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Search matches query against name, phone, email and the decimal id. Matching is case-sensitive.
func (s *directoryService) Search(query string) []models.Customer {
	var results []models.Customer
	for _, c := range s.customers {
		if strings.Contains(c.Name, query) ||
			strings.Contains(c.Phone, query) ||
			strings.Contains(c.Email, query) ||
			strings.Contains(strconv.Itoa(c.ID), query) {
			results = append(results, c)
		}
	}
	return results
}

func (s *directoryService) All() []models.Customer {
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Create registers a customer under the next free id (highest id plus one).
func (s *directoryService) Create(input models.CustomerInput) (models.Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Address = strings.TrimSpace(input.Address)

	if err := s.validate.Struct(input); err != nil {
		return models.Customer{}, err
	}
	if len(s.customers) >= s.maxCustomers {
		return models.Customer{}, ErrDirectoryFull
	}

	maxID := 0
	for _, c := range s.customers {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	customer := models.Customer{
		ID:      maxID + 1,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}

	s.customers = append(s.customers, customer)
	if err := s.Persist(); err != nil {
		s.customers = s.customers[:len(s.customers)-1]
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *directoryService) Persist() error {
	records := make([][]string, 0, len(s.customers))
	for _, c := range s.customers {
		records = append(records, []string{strconv.Itoa(c.ID), c.Name, c.Phone, c.Email, c.Address})
	}
	if err := s.file.WriteAll(records); err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	return nil
}

func parseCustomer(rec []string) (models.Customer, error) {
	if len(rec) < 5 {
		return models.Customer{}, fmt.Errorf("want 5 fields, got %d", len(rec))
	}

	id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil || id <= 0 {
		return models.Customer{}, fmt.Errorf("bad id %q", rec[0])
	}

	return models.Customer{
		ID:      id,
		Name:    truncate(strings.TrimSpace(rec[1]), models.MaxNameLen),
		Phone:   strings.TrimSpace(rec[2]),
		Email:   strings.TrimSpace(rec[3]),
		Address: strings.TrimSpace(rec[4]),
	}, nil
}
