// Package repomanager vends repositories bound to a database handle and owns
// schema migration.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/streamcast/user-service/internal/dbx"
	"github.com/streamcast/user-service/internal/server/repositories/refreshtokens"
	"github.com/streamcast/user-service/internal/server/repositories/users"
)

// RepositoryManager creates repositories bound to the provided DBTX, which
// may be a plain connection or an open transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
