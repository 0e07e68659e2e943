package postgre

import (
	"database/sql"
	"fmt"

	"pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed deals store.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("deal/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("deal/repository/postgre.%s", method)
}
