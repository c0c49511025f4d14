package domain

import (
	"context"

	"github.com/google/uuid"
)

// WalletRepository is the abstraction for any kind of database intended
// to persist Wallet entities.
type WalletRepository interface {
	// AddWallet persists the given wallet. Names are unique across the
	// repository.
	AddWallet(ctx context.Context, wallet *Wallet) error
	// GetWallet returns the wallet with the given id, or
	// ErrWalletNotFound.
	GetWallet(ctx context.Context, id uuid.UUID) (*Wallet, error)
	// GetWalletByName returns the wallet with the given name, or
	// ErrWalletNotFound.
	GetWalletByName(ctx context.Context, name string) (*Wallet, error)
	// GetAllWallets returns every persisted wallet.
	GetAllWallets(ctx context.Context) ([]Wallet, error)
	// UpdateWallet reads the wallet with the given id, applies updateFn
	// to it and persists whatever the callback returns, all within the
	// same transaction.
	UpdateWallet(
		ctx context.Context,
		id uuid.UUID,
		updateFn func(w *Wallet) (*Wallet, error),
	) error
	// DeleteWallet removes the wallet with the given id, or returns
	// ErrWalletNotFound.
	DeleteWallet(ctx context.Context, id uuid.UUID) error
}
