package main

import (
	"context"
	"fmt"
	"net/http"

	"eventhorizon/internal/store"
	"eventhorizon/shared/go/logging"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.Fatal(err, "load configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err, "connect to database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := bootstrapDemoData(context.Background(), db, dataStore); err != nil {
		logger.Fatal(err, "bootstrap demo data")
	}

	handler := newHTTPHandler(cfg, dataStore)

	logger.Info(fmt.Sprintf("API available at http://localhost%s", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
