package configs

import (
	"github.com/devneill/dinnernotonyourown-10/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	// TranslateError: unique constraint ต้องโผล่มาเป็น gorm.ErrDuplicatedKey
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Restaurant{},
		&entity.DinnerGroup{},
		&entity.Attendee{},
	)
}
