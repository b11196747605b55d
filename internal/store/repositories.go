package store

import (
	"github.com/vidora/accounts/internal/logger"
)

// Repositories aggregates all data-access components of the service.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
	}
}
