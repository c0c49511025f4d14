package application

import (
	"time"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
)

// WalletInfo is the public view of a stored wallet, safe to print and
// list without unlocking anything.
type WalletInfo struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	MainnetAddress string    `json:"mainnet_address"`
	TestnetAddress string    `json:"testnet_address"`
	CreatedAt      time.Time `json:"created_at"`
}

// WalletSecrets is the unlocked view of a stored wallet: the seed
// material plus the exportable encodings of its first external key on
// both networks.
type WalletSecrets struct {
	Mnemonic          string `json:"mnemonic,omitempty"`
	SeedPassphrase    string `json:"seed_passphrase,omitempty"`
	MainnetWIF        string `json:"mainnet_wif"`
	TestnetWIF        string `json:"testnet_wif"`
	MainnetDescriptor string `json:"mainnet_descriptor"`
	TestnetDescriptor string `json:"testnet_descriptor"`
}

func walletInfoFromDomain(w *domain.Wallet) WalletInfo {
	return WalletInfo{
		ID:             w.ID.String(),
		Name:           w.Name,
		Type:           w.Type,
		MainnetAddress: w.MainnetAddress,
		TestnetAddress: w.TestnetAddress,
		CreatedAt:      w.CreatedAt,
	}
}
