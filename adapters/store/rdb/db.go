package rdb

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN is used when the db-url carries no data source.
const DefaultDSN = "./kubeconfigure.db"

// OpenFromURL opens the endpoint database named by a db-url of the form
// sqlite:<dsn> or sqlite3:<dsn>, e.g. sqlite:./kubeconfigure.db.
// File databases get a busy timeout so that concurrent CLI runs wait on locks.
func OpenFromURL(dbURL string) (*gorm.DB, error) {
	scheme, dsn, ok := strings.Cut(dbURL, ":")
	if !ok || (scheme != "sqlite" && scheme != "sqlite3") {
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
	if dsn == "" {
		dsn = DefaultDSN
	}
	if !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "_busy_timeout") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_busy_timeout=5000"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}
	return db, nil
}

// AutoMigrate creates or updates the endpoints table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&EndpointRecord{})
}
