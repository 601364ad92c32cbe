package docstore

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// sessionContext wraps a mongo session context behind the shared marker
// interface, the mongo counterpart of the GORM transaction context.
type sessionContext struct {
	sc mongo.SessionContext
}

// NewSessionContext wraps sc as a shared.TransactionContext.
func NewSessionContext(sc mongo.SessionContext) shared.TransactionContext {
	return &sessionContext{sc: sc}
}

// Context returns the driver context carrying the session; operations run
// with it join the open transaction. Repositories assert for this method
// locally, the domain layer cannot.
func (ctx *sessionContext) Context() context.Context {
	return ctx.sc
}

type mongoSessionContext interface {
	shared.TransactionContext
	Context() context.Context
}

// resolveContext picks the session-bound context when ctx is one of ours,
// a plain background context otherwise.
func resolveContext(ctx shared.TransactionContext) context.Context {
	if sc, ok := ctx.(mongoSessionContext); ok {
		return sc.Context()
	}
	return context.Background()
}
