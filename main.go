package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"pos-terminal/config"
	"pos-terminal/controllers"
	"pos-terminal/menu"
	"pos-terminal/routes"
	"pos-terminal/services"
	"pos-terminal/status"
	"pos-terminal/store"
	"pos-terminal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, closeLog := openLogger(cfg.LogFile)
	defer closeLog()

	shutdown, err := telemetry.Setup(cfg.TraceFile)
	if err != nil {
		log.Fatalf("Error setting up tracing: %v", err)
	}
	defer shutdown(context.Background())

	fmt.Println("Initializing XYZ Retail Store Billing System...")

	// load data
	paths := cfg.Paths()
	catalog := services.NewCatalogService(store.NewFile(paths.Items, services.ItemsHeader), cfg.Limits.MaxItems, logger)
	if err := catalog.Load(); err != nil {
		logger.Printf("Catalog: %v", err)
	}

	directory := services.NewDirectoryService(store.NewFile(paths.Customers, services.CustomersHeader), cfg.Limits.MaxCustomers, logger)
	if err := directory.Load(); err != nil {
		logger.Printf("Directory: %v", err)
	}

	ledger := services.NewLedgerService(services.LedgerOptions{
		Receipts: store.NewFile(paths.Receipts, services.ReceiptsHeader),
		Details:  store.NewFile(paths.ReceiptDetails, services.ReceiptDetailsHeader),
		Journal:  store.NewJournal(paths.Journal),
		Catalog:  catalog,
		Limits:   cfg.Limits,
		Logger:   logger,
	})
	if err := ledger.Load(); err != nil {
		logger.Printf("Ledger: %v", err)
	}
	if recovered, err := ledger.Recover(context.Background()); err != nil {
		logger.Printf("Journal replay failed: %v", err)
	} else if recovered {
		fmt.Println("Completed an interrupted checkout from the previous run.")
	}

	session := services.NewSession(cfg.Limits.MaxCartLines)

	// status views
	hub := status.NewHub(logger, status.NewLogObserver(logger))
	if cfg.StatusPanel {
		hub.Attach(status.NewConsolePanel(os.Stdout, session.Cart))
	}

	h := &controllers.Controller{
		Catalog:           catalog,
		Directory:         directory,
		Ledger:            ledger,
		Reports:           services.NewReportService(ledger, catalog),
		Session:           session,
		Status:            hub,
		StoreName:         cfg.StoreName,
		LowStockThreshold: cfg.LowStockThreshold,
		ExportDir:         cfg.DataDir,
	}

	r := menu.New(cfg.StoreName+" BILLING SYSTEM", os.Stdin, os.Stdout, logger)
	r.OnScreen(hub.OnScreenChanged)
	routes.RegisterRoutes(r, h)

	hub.OnMessage("System Ready", status.Info)
	fmt.Println("Welcome to XYZ Retail Store Billing System!")

	if err := r.Run(); err != nil {
		logger.Printf("Menu loop stopped: %v", err)
	}
	fmt.Println("Thank you for using XYZ Billing System!")
}

// openLogger sends log output to path so it does not interleave with the menu.
func openLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("Warning: cannot create log dir: %v", err)
		return log.New(os.Stderr, "pos ", log.LstdFlags), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: cannot open log file: %v", err)
		return log.New(os.Stderr, "pos ", log.LstdFlags), func() {}
	}
	return log.New(f, "pos ", log.LstdFlags), func() { f.Close() }
}
