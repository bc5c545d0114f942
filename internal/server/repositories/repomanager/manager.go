// Package repomanager wires repository constructors to a backing store and
// exposes schema migrations and transaction scoping to the service layer.
package repomanager

import (
	"context"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/dbx"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/pictures"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a database handle. Passing a
// nil DBTX binds the repository to the manager's default handle; passing the
// tx received from InTx binds it to that transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
	Users(db dbx.DBTX) users.Repository
	Pictures(db dbx.DBTX) pictures.Repository
}
