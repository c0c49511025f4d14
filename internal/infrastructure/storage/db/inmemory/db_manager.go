package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
	"github.com/pocx-network/pocxwallet/internal/core/ports"
)

// DbManager is the in memory counterpart of the badger persistence. It
// backs the unit tests and the one-shot commands that don't want to
// touch the datadir.
type DbManager struct {
	walletStore      *walletStore
	walletRepository domain.WalletRepository
}

type walletStore struct {
	locker  *sync.Mutex
	wallets map[uuid.UUID]domain.Wallet
}

// NewDbManager returns a new empty DbManager
func NewDbManager() *DbManager {
	manager := &DbManager{
		walletStore: &walletStore{
			locker:  &sync.Mutex{},
			wallets: map[uuid.UUID]domain.Wallet{},
		},
	}
	manager.walletRepository = NewWalletRepositoryImpl(manager)
	return manager
}

// WalletRepository implements the ports.DbManager interface
func (d *DbManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

// Close implements the ports.DbManager interface
func (d *DbManager) Close() {}

// NewTransaction implements the ports.DbManager interface
func (d *DbManager) NewTransaction() ports.Transaction {
	return transaction{}
}

// RunTransaction runs the handler as is. The in memory store applies
// every write directly, there is nothing to commit or discard.
func (d *DbManager) RunTransaction(
	ctx context.Context,
	_ bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	return handler(ctx)
}

type transaction struct{}

func (t transaction) Commit() error { return nil }
func (t transaction) Discard()      {}
