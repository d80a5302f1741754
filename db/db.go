package db

import (
	"log"
	"os"

	"formforge/config"
	"formforge/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect opens the database (sqlite3 by default) and runs automigrate when
// AUTOMIGRATE=1 is exported.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Println("Connecting to postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Println("Connecting to sqlite3...")
		db, err = gorm.Open("sqlite3", "db/database.db")
	}

	if err != nil {
		log.Println("Got error when connecting to database: " + err.Error())
		return nil, err
	}

	db.LogMode(getenv("DB_LOG", "0") == "1")

	if getenv("AUTOMIGRATE", "0") == "1" {
		Migrate(db)
	}

	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Form{},
		&models.Submission{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
