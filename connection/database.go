package connection

import (
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"taskmanagerpro/model"
)

// DBConnection opens the database named by DATABASE_DSN (MySQL) or falls
// back to an embedded SQLite file, then migrates the schema.
func DBConnection() (*gorm.DB, error) {
	godotenv.Load()

	var db *gorm.DB
	var err error
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "taskmanagerpro.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Task{},
		&model.Checklist{},
		&model.ActionItem{},
		&model.RefreshToken{},
	)
}
