package database

import (
	"path/filepath"
	"testing"

	"lifeops-backend/pkg/config"
)

type probe struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

func TestOpenSQLite(t *testing.T) {
	db, err := Open(&config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "lifeops.db")})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := Migrate(db, &probe{}); err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := db.Create(&probe{ID: "a", Name: "x"}).Error; err != nil {
		t.Fatalf("Create: %v", err)
	}
	var got probe
	if err := db.First(&got, "id = ?", "a").Error; err != nil || got.Name != "x" {
		t.Fatalf("First=%+v err=%v", got, err)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	if _, err := Open(&config.Config{DBDriver: "postgres"}); err == nil {
		t.Fatalf("postgres without DATABASE_URL succeeded")
	}
	if _, err := Open(&config.Config{DBDriver: "mysql"}); err == nil {
		t.Fatalf("unknown driver succeeded")
	}
}
