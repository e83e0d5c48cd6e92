package root

import (
	"fmt"

	authdomain "lifeops-backend/internal/auth/domain"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/kv"
	"lifeops-backend/internal/provision"
	"lifeops-backend/pkg/config"
	"lifeops-backend/pkg/database"
	"lifeops-backend/pkg/google"

	"gorm.io/gorm"
)

// app is the shared wiring of every command
type app struct {
	cfg       *config.Config
	db        *gorm.DB
	kv        kv.Backend
	google    *google.Service
	workbooks *provision.Workbooks
	clock     clock.Clock
}

func openApp() (*app, func(), error) {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db, &kv.Entry{}, &authdomain.User{}); err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	backend := kv.NewGormBackend(db)
	g := google.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret)
	return &app{
		cfg:       cfg,
		db:        db,
		kv:        backend,
		google:    g,
		workbooks: provision.NewWorkbooks(g, g, backend),
		clock:     clock.New(cfg.Location()),
	}, cleanup, nil
}
