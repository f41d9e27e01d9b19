package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/lojapratica/pix-backend/pkg/config"
)

// Connect opens the shared connection pool. It is called once at startup and
// the returned handle is injected into the query structs; handlers never
// reach for a package-level connection.
func Connect(cfg *config.Config) (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error open connecting: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}
