package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection for the given DSN. The DSN is
// assembled from the config struct in main; this package never touches
// the environment.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
