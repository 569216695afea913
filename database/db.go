// Package database handles sqlite initialization, model migration and the
// bootstrap admin account for the spesometro panel.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/domysh/spesometro/config"
	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/util/crypto"
	"github.com/domysh/spesometro/util/random"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.User{},
		&model.Board{},
		&model.Setting{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initUser creates the bootstrap admin account when no admin-role user
// exists. The clear-text password is logged exactly once; afterwards it is
// only recoverable through a privileged user edit.
func initUser() error {
	var count int64
	err := db.Model(model.User{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).
		Error
	if err != nil {
		log.Printf("Error counting admin users: %v", err)
		return err
	}
	if count > 0 {
		return nil
	}

	clearPassword := config.GetDefaultPassword()
	if clearPassword == "" {
		clearPassword = random.Seq(12)
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(clearPassword)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: model.ReservedUsername,
		Password: hashedPassword,
		Role:     model.RoleAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}
	log.Printf("'%s' created! Password: %s", model.ReservedUsername, clearPassword)
	return nil
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initUser(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint() error {
	// Update WAL
	err := db.Exec("PRAGMA wal_checkpoint;").Error
	if err != nil {
		return err
	}
	return nil
}
