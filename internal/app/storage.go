package app

import (
	"fmt"

	"gorm.io/gorm"
	"grievance-portal-go/internal/config"
	"grievance-portal-go/internal/db"
	messagedomain "grievance-portal-go/internal/domain/message"
	persondomain "grievance-portal-go/internal/domain/person"
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/internal/repository/inmemory"
	messagerepo "grievance-portal-go/internal/repository/postgres/message"
	personrepo "grievance-portal-go/internal/repository/postgres/person"
	userrepo "grievance-portal-go/internal/repository/postgres/user"
	"grievance-portal-go/migrations"
	"grievance-portal-go/pkg/logger"
)

// Storage bundles the repositories behind the configured backend.
type Storage struct {
	DB       *gorm.DB
	Users    userdomain.Repository
	Persons  persondomain.Repository
	Messages messagedomain.Repository
}

func OpenStorage(cfg config.Config, log logger.Logger) (*Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("app: using in-memory storage; data is lost on restart")
		store := inmemory.NewStore()
		return &Storage{Users: store, Persons: store, Messages: store}, nil
	case config.StoragePostgres, "":
		dbConn, err := db.NewPostgres(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return NewPostgresStorage(dbConn), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func NewPostgresStorage(dbConn *gorm.DB) *Storage {
	return &Storage{
		DB:       dbConn,
		Users:    userrepo.NewPostgres(dbConn),
		Persons:  personrepo.NewPostgres(dbConn),
		Messages: messagerepo.NewPostgres(dbConn),
	}
}

// Migrate applies the embedded SQL migrations. It is a no-op for memory storage.
func (s *Storage) Migrate(log logger.Logger) (int, error) {
	if s.DB == nil {
		return 0, nil
	}
	return db.Migrate(s.DB, migrations.Files, log)
}

func (s *Storage) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
