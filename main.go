package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mergington/activities/cliparse"
	"github.com/mergington/activities/client"
	"github.com/mergington/activities/db"
	"github.com/mergington/activities/middleware"
	"github.com/mergington/activities/router"
	"github.com/mergington/activities/ui"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Mode == cliparse.ModeBrowse {
		err = runBrowse(cfg)
	} else {
		err = runServe(cfg)
	}
	if err != nil {
		slog.Error("Error", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

func runServe(cfg cliparse.Config) error {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		return err
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		return err
	}

	// Load the activity catalog
	seed := db.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = db.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return err
		}
	}
	if err := db.Seed(dbConn, seed); err != nil {
		return err
	}
	slog.Info("Database ready", "activities", len(seed))

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	slog.Info("Server closed")
	return nil
}

func runBrowse(cfg cliparse.Config) error {
	api := client.New(cfg.APIURL)
	browser := ui.NewBrowser(api, os.Stdin, os.Stdout, slog.Default())
	return browser.Run(context.Background())
}
