package database

import (
	"log"

	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens the persistence backend. A non-empty postgresDSN selects
// Postgres; otherwise the store lives in a local SQLite file at sqlitePath,
// which is the default single-machine deployment.
func NewConnection(postgresDSN, sqlitePath string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if postgresDSN != "" {
		db, err = gorm.Open(postgres.Open(postgresDSN), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&storage.Entrada{}); err != nil {
		log.Println("WARNING: Failed to auto-migrate storage table:", err)
	}

	return db, nil
}
