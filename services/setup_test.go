package services_test

import (
	"path/filepath"
	"testing"

	"github.com/devneill/dinnernotonyourown-10/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// sqlite ชอบ lock — บังคับ connection เดียวให้ transaction เข้าแถวกัน
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Restaurant{}, &entity.DinnerGroup{}, &entity.Attendee{}))
	return db
}
