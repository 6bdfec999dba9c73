package db

import (
	"webgis/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the relational store: MySQL when a DSN is configured,
// a local SQLite file otherwise.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	options := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	if cfg.MySQLDSN != "" {
		return gorm.Open(mysql.Open(cfg.MySQLDSN), options)
	}
	return gorm.Open(sqlite.Open(cfg.SQLiteFile), options)
}
