package ports

import (
	"context"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
)

// DbManager is the entry point for the persistence layer: it hands out
// the repositories and manages the transactions they run in.
type DbManager interface {
	WalletRepository() domain.WalletRepository

	Close()

	NewTransaction() Transaction
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)
}

// Transaction interface defines the method to commit or discard a database transaction.
type Transaction interface {
	Commit() error
	Discard()
}
