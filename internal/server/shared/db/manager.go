// Package db wires repository implementations to a storage backend: the
// default pair of flat JSON documents, or Postgres when a DSN is configured.
package db

import (
	"github.com/dmitrijs2005/filevault/internal/server/files"
	"github.com/dmitrijs2005/filevault/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Files() files.Repository
	Close() error
}
