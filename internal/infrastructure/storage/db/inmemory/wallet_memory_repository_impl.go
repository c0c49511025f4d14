package inmemory

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
)

type walletRepositoryImpl struct {
	db *DbManager
}

// NewWalletRepositoryImpl returns a new empty in memory implementation
// of the domain.WalletRepository interface
func NewWalletRepositoryImpl(db *DbManager) domain.WalletRepository {
	return &walletRepositoryImpl{db: db}
}

func (r *walletRepositoryImpl) AddWallet(
	_ context.Context, wallet *domain.Wallet,
) error {
	r.db.walletStore.locker.Lock()
	defer r.db.walletStore.locker.Unlock()

	if _, ok := r.db.walletStore.wallets[wallet.ID]; ok {
		return domain.ErrWalletAlreadyExists
	}
	for _, w := range r.db.walletStore.wallets {
		if w.Name == wallet.Name {
			return domain.ErrWalletAlreadyExists
		}
	}

	r.db.walletStore.wallets[wallet.ID] = *wallet
	return nil
}

func (r *walletRepositoryImpl) GetWallet(
	_ context.Context, id uuid.UUID,
) (*domain.Wallet, error) {
	r.db.walletStore.locker.Lock()
	defer r.db.walletStore.locker.Unlock()

	wallet, ok := r.db.walletStore.wallets[id]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	return &wallet, nil
}

func (r *walletRepositoryImpl) GetWalletByName(
	_ context.Context, name string,
) (*domain.Wallet, error) {
	r.db.walletStore.locker.Lock()
	defer r.db.walletStore.locker.Unlock()

	for _, w := range r.db.walletStore.wallets {
		if w.Name == name {
			wallet := w
			return &wallet, nil
		}
	}
	return nil, domain.ErrWalletNotFound
}

func (r *walletRepositoryImpl) GetAllWallets(
	_ context.Context,
) ([]domain.Wallet, error) {
	r.db.walletStore.locker.Lock()
	defer r.db.walletStore.locker.Unlock()

	wallets := make([]domain.Wallet, 0, len(r.db.walletStore.wallets))
	for _, w := range r.db.walletStore.wallets {
		wallets = append(wallets, w)
	}
	return wallets, nil
}

func (r *walletRepositoryImpl) UpdateWallet(
	_ context.Context,
	id uuid.UUID,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	r.db.walletStore.locker.Lock()
	defer r.db.walletStore.locker.Unlock()

	current, ok := r.db.walletStore.wallets[id]
	if !ok {
		return domain.ErrWalletNotFound
	}

	updated, err := updateFn(&current)
	if err != nil {
		return err
	}

	r.db.walletStore.wallets[id] = *updated
	return nil
}

func (r *walletRepositoryImpl) DeleteWallet(
	_ context.Context, id uuid.UUID,
) error {
	r.db.walletStore.locker.Lock()
	defer r.db.walletStore.locker.Unlock()

	if _, ok := r.db.walletStore.wallets[id]; !ok {
		return domain.ErrWalletNotFound
	}
	delete(r.db.walletStore.wallets, id)
	return nil
}
