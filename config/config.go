package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Limits bounds every in-memory table. Operations reject work that would
// exceed them instead of growing past the limit.
type Limits struct {
	MaxItems          int `yaml:"max_items" validate:"min=1"`
	MaxCustomers      int `yaml:"max_customers" validate:"min=1"`
	MaxCartLines      int `yaml:"max_cart_lines" validate:"min=1"`
	MaxReceipts       int `yaml:"max_receipts" validate:"min=1"`
	MaxReceiptDetails int `yaml:"max_receipt_details" validate:"min=1"`
}

type Config struct {
	DataDir           string `yaml:"data_dir" validate:"required"`
	LogFile           string `yaml:"log_file"`
	TraceFile         string `yaml:"trace_file"`
	StoreName         string `yaml:"store_name" validate:"required,max=40"`
	StatusPanel       bool   `yaml:"status_panel"`
	LowStockThreshold int    `yaml:"low_stock_threshold" validate:"min=0"`
	Limits            Limits `yaml:"limits"`
}

// Paths are the data files derived from DataDir.
type Paths struct {
	Items          string
	Customers      string
	Receipts       string
	ReceiptDetails string
	Journal        string
}

func Default() Config {
	return Config{
		DataDir:           "data",
		LogFile:           filepath.Join("data", "pos.log"),
		StoreName:         "XYZ RETAIL STORE",
		StatusPanel:       true,
		LowStockThreshold: 5,
		Limits: Limits{
			MaxItems:          100,
			MaxCustomers:      100,
			MaxCartLines:      50,
			MaxReceipts:       1000,
			MaxReceiptDetails: 5000,
		},
	}
}

func (c Config) Paths() Paths {
	return Paths{
		Items:          filepath.Join(c.DataDir, "items.txt"),
		Customers:      filepath.Join(c.DataDir, "customers.txt"),
		Receipts:       filepath.Join(c.DataDir, "receipts.txt"),
		ReceiptDetails: filepath.Join(c.DataDir, "receipt_details.txt"),
		Journal:        filepath.Join(c.DataDir, "checkout.journal"),
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment (including a .env file when present), then validates it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment")
	}

	cfg := Default()

	path := os.Getenv("POS_CONFIG")
	if path == "" {
		path = "pos.yaml"
	}
	if err := cfg.mergeFile(path); err != nil {
		return cfg, err
	}

	if err := cfg.mergeEnv(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv("POS_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("POS_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("POS_TRACE_FILE"); v != "" {
		c.TraceFile = v
	}
	if v := os.Getenv("POS_STORE_NAME"); v != "" {
		c.StoreName = v
	}
	if v := os.Getenv("POS_STATUS_PANEL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("POS_STATUS_PANEL: %w", err)
		}
		c.StatusPanel = b
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"POS_LOW_STOCK", &c.LowStockThreshold},
		{"POS_MAX_ITEMS", &c.Limits.MaxItems},
		{"POS_MAX_CUSTOMERS", &c.Limits.MaxCustomers},
		{"POS_MAX_CART_LINES", &c.Limits.MaxCartLines},
		{"POS_MAX_RECEIPTS", &c.Limits.MaxReceipts},
		{"POS_MAX_RECEIPT_DETAILS", &c.Limits.MaxReceiptDetails},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	return nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
