package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// TransactionManager implements shared.TransactionManager on mongo
// sessions. WithTransaction already retries transient conflicts with the
// driver's own backoff; errors that stay transient after that surface as
// ErrTransactionConflict.
type TransactionManager struct {
	client *mongo.Client
}

func NewTransactionManager(store *Store) *TransactionManager {
	return &TransactionManager{client: store.Client()}
}

func (m *TransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	sess, err := m.client.StartSession()
	if err != nil {
		return shared.ErrStoreUnavailable.WithContext("cause", err.Error())
	}
	defer sess.EndSession(context.Background())

	_, err = sess.WithTransaction(context.Background(), func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(NewSessionContext(sc))
	})
	if err == nil {
		return nil
	}
	if isTransientTransactionError(err) {
		return shared.ErrTransactionConflict.WithContext("cause", err.Error())
	}
	return err
}

func isTransientTransactionError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}
