package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
)

type walletRepositoryImpl struct {
	db *DbManager
}

// NewWalletRepositoryImpl initialize a badger implementation of the
// domain.WalletRepository interface
func NewWalletRepositoryImpl(db *DbManager) domain.WalletRepository {
	return walletRepositoryImpl{db}
}

func (w walletRepositoryImpl) AddWallet(
	ctx context.Context, wallet *domain.Wallet,
) error {
	return w.insertWallet(ctx, *wallet)
}

func (w walletRepositoryImpl) GetWallet(
	ctx context.Context, id uuid.UUID,
) (*domain.Wallet, error) {
	return w.getWallet(ctx, id)
}

func (w walletRepositoryImpl) GetWalletByName(
	ctx context.Context, name string,
) (*domain.Wallet, error) {
	query := badgerhold.Where("Name").Eq(name)
	wallets, err := w.findWallets(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(wallets) <= 0 {
		return nil, domain.ErrWalletNotFound
	}
	return &wallets[0], nil
}

func (w walletRepositoryImpl) GetAllWallets(
	ctx context.Context,
) ([]domain.Wallet, error) {
	query := badgerhold.Where(badgerhold.Key).Ne(uuid.Nil)
	return w.findWallets(ctx, query)
}

func (w walletRepositoryImpl) UpdateWallet(
	ctx context.Context,
	id uuid.UUID,
	updateFn func(wallet *domain.Wallet) (*domain.Wallet, error),
) error {
	currentWallet, err := w.getWallet(ctx, id)
	if err != nil {
		return err
	}

	updatedWallet, err := updateFn(currentWallet)
	if err != nil {
		return err
	}

	return w.updateWallet(ctx, id, *updatedWallet)
}

func (w walletRepositoryImpl) DeleteWallet(
	ctx context.Context, id uuid.UUID,
) error {
	return w.deleteWallet(ctx, id)
}

func (w walletRepositoryImpl) insertWallet(
	ctx context.Context, wallet domain.Wallet,
) error {
	sameName, err := w.findWallets(
		ctx, badgerhold.Where("Name").Eq(wallet.Name),
	)
	if err != nil {
		return err
	}
	if len(sameName) > 0 {
		return domain.ErrWalletAlreadyExists
	}

	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = w.db.Store.TxInsert(tx, wallet.ID, &wallet)
	} else {
		err = w.db.Store.Insert(wallet.ID, &wallet)
	}
	if err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrWalletAlreadyExists
		}
		return err
	}
	return nil
}

func (w walletRepositoryImpl) getWallet(
	ctx context.Context, id uuid.UUID,
) (*domain.Wallet, error) {
	var wallet domain.Wallet
	var err error

	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = w.db.Store.TxGet(tx, id, &wallet)
	} else {
		err = w.db.Store.Get(id, &wallet)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

func (w walletRepositoryImpl) findWallets(
	ctx context.Context, query *badgerhold.Query,
) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	var err error

	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = w.db.Store.TxFind(tx, &wallets, query)
	} else {
		err = w.db.Store.Find(&wallets, query)
	}
	if err != nil {
		return nil, err
	}
	return wallets, nil
}

func (w walletRepositoryImpl) updateWallet(
	ctx context.Context, id uuid.UUID, wallet domain.Wallet,
) error {
	var err error

	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = w.db.Store.TxUpdate(tx, id, wallet)
	} else {
		err = w.db.Store.Update(id, wallet)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrWalletNotFound
		}
		return err
	}
	return nil
}

func (w walletRepositoryImpl) deleteWallet(
	ctx context.Context, id uuid.UUID,
) error {
	var err error

	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = w.db.Store.TxDelete(tx, id, domain.Wallet{})
	} else {
		err = w.db.Store.Delete(id, domain.Wallet{})
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrWalletNotFound
		}
		return err
	}
	return nil
}
