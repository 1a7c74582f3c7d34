package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"eventhorizon/shared/go/logging"
)

const (
	dbPingTimeout    = 5 * time.Second
	dbConnectWait    = 30 * time.Second
	dbInitialBackoff = 500 * time.Millisecond
	dbMaxBackoff     = 5 * time.Second
)

// openDatabase opens the catalog database and pings until it answers,
// backing off between attempts so a freshly started Postgres container
// has time to come up.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deadline := time.Now().Add(dbConnectWait)
	backoff := dbInitialBackoff

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		err = db.PingContext(pingCtx)
		cancel()

		if err == nil {
			return db, nil
		}

		if ctx.Err() != nil || time.Now().After(deadline) {
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}

		logging.Warn(fmt.Sprintf("database not ready (attempt %d), retrying in %s: %v", attempt, backoff, err))

		time.Sleep(backoff)
		backoff *= 2
		if backoff > dbMaxBackoff {
			backoff = dbMaxBackoff
		}
	}
}
