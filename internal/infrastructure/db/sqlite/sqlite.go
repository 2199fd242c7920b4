// Package sqlite implements the repositories on gorm over a local SQLite
// database. SQLite keeps the deployment to a single file while the unique
// constraints still backstop concurrent registration.
package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

var defaultDishTypes = []string{"starter", "main", "dessert", "drink"}

// Connect opens (creating if needed) the SQLite database at path, runs the
// schema migration, and seeds the dish type catalog on first start.
func Connect(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	dsn := path + "?_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	if err := seedDishTypes(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Account{},
		&domain.User{},
		&domain.DishType{},
		&domain.Dish{},
		&domain.Event{},
		&domain.EventDish{},
		&domain.EventRequest{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}

func seedDishTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.DishType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, t := range defaultDishTypes {
		if err := db.Create(&domain.DishType{Type: t}).Error; err != nil {
			return err
		}
	}
	return nil
}
