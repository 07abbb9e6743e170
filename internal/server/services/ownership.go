package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
)

type ownerFunc func(ctx context.Context, h dbx.DBTX, lock bool) (int64, error)

type mutateFunc func(ctx context.Context, h dbx.DBTX) error

// withOwnership runs mutate once principalID is confirmed as owner.
//
// Without strict the check and the mutation are two independent
// statements; a row deleted in between makes mutate report NotFound.
// With strict both run in one transaction and the row stays locked from
// the check on.
func withOwnership(ctx context.Context, db *sql.DB, strict bool, principalID int64, owner ownerFunc, mutate mutateFunc) error {
	run := func(ctx context.Context, h dbx.DBTX) error {
		ownerID, err := owner(ctx, h, strict)
		if err != nil {
			return repoError("check owner", err)
		}
		if ownerID != principalID {
			return common.ErrorForbidden
		}
		return mutate(ctx, h)
	}

	if !strict {
		return run(ctx, db)
	}
	return dbx.WithTx(ctx, db, nil, run)
}
