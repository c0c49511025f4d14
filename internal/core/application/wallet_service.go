package application

import (
	"context"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
	"github.com/pocx-network/pocxwallet/internal/core/ports"
	"github.com/pocx-network/pocxwallet/pkg/wallet"
)

// WalletService is the application layer over the stored wallets: it
// creates, restores and imports wallets, unlocks them for key material
// exports and hands descriptors over to the node.
type WalletService interface {
	// CreateWallet generates a wallet from fresh entropy and persists it
	// encrypted under the given name.
	CreateWallet(ctx context.Context, args CreateWalletArgs) (*WalletInfo, error)
	// RestoreWallet persists a wallet restored from an existing mnemonic.
	RestoreWallet(ctx context.Context, args RestoreWalletArgs) (*WalletInfo, error)
	// ImportWallet persists a single-key wallet imported from a WIF or a
	// raw hex scalar.
	ImportWallet(ctx context.Context, args ImportWalletArgs) (*WalletInfo, error)
	// GetWalletInfo returns the public view of the named wallet.
	GetWalletInfo(ctx context.Context, name string) (*WalletInfo, error)
	// ListWallets returns the public view of every stored wallet, oldest
	// first.
	ListWallets(ctx context.Context) ([]WalletInfo, error)
	// RevealWalletSecrets unlocks the named wallet and returns its seed
	// material along with WIF and descriptor exports for both networks.
	RevealWalletSecrets(
		ctx context.Context, name, passphrase string,
	) (*WalletSecrets, error)
	// DeriveAddress unlocks the named wallet and derives one address.
	DeriveAddress(ctx context.Context, args DeriveArgs) (string, error)
	// DeriveDescriptor unlocks the named wallet and derives the wpkh()
	// descriptor of one of its keys.
	DeriveDescriptor(ctx context.Context, args DeriveArgs) (string, error)
	// ChangePassphrase re-encrypts the named wallet's secret under a new
	// passphrase.
	ChangePassphrase(
		ctx context.Context, name, currentPassphrase, newPassphrase string,
	) error
	// DeleteWallet removes the named wallet. The passphrase must be valid,
	// deleting seed material is not a guessing game.
	DeleteWallet(ctx context.Context, name, passphrase string) error
	// ImportToNode derives a descriptor and registers it with the
	// connected node's wallet, labelled with the wallet name.
	ImportToNode(ctx context.Context, args ImportToNodeArgs) error
}

// CreateWalletArgs groups the parameters of WalletService.CreateWallet.
// A zero WordCount defaults to 12 words.
type CreateWalletArgs struct {
	Name           string
	WordCount      int
	SeedPassphrase string
	Passphrase     string
}

// RestoreWalletArgs groups the parameters of WalletService.RestoreWallet
type RestoreWalletArgs struct {
	Name           string
	Mnemonic       string
	SeedPassphrase string
	Passphrase     string
}

// ImportWalletArgs groups the parameters of WalletService.ImportWallet
type ImportWalletArgs struct {
	Name       string
	Key        string
	Passphrase string
}

// DeriveArgs addresses one key of a stored wallet
type DeriveArgs struct {
	Name       string
	Passphrase string
	Account    uint32
	Index      uint32
	Testnet    bool
	Change     bool
}

// ImportToNodeArgs groups the parameters of WalletService.ImportToNode
type ImportToNodeArgs struct {
	Name       string
	Passphrase string
	Account    uint32
	Index      uint32
	Testnet    bool
	Rescan     bool
}

type walletService struct {
	dbManager   ports.DbManager
	nodeService ports.NodeService
}

// NewWalletService returns a WalletService backed by the given
// repositories. The node service may be nil when no RPC endpoint is
// configured; node operations then fail with ErrNodeNotConfigured.
func NewWalletService(
	dbManager ports.DbManager, nodeService ports.NodeService,
) WalletService {
	return &walletService{
		dbManager:   dbManager,
		nodeService: nodeService,
	}
}

func (s *walletService) CreateWallet(
	ctx context.Context, args CreateWalletArgs,
) (*WalletInfo, error) {
	wordCount := args.WordCount
	if wordCount == 0 {
		wordCount = 12
	}

	signingWallet, err := wallet.NewWallet(wallet.NewWalletOpts{
		WordCount:  wordCount,
		Passphrase: args.SeedPassphrase,
	})
	if err != nil {
		return nil, err
	}

	return s.addWallet(ctx, args.Name, signingWallet, args.Passphrase)
}

func (s *walletService) RestoreWallet(
	ctx context.Context, args RestoreWalletArgs,
) (*WalletInfo, error) {
	signingWallet, err := wallet.NewWalletFromMnemonic(
		wallet.NewWalletFromMnemonicOpts{
			Mnemonic:   args.Mnemonic,
			Passphrase: args.SeedPassphrase,
		},
	)
	if err != nil {
		return nil, err
	}

	return s.addWallet(ctx, args.Name, signingWallet, args.Passphrase)
}

func (s *walletService) ImportWallet(
	ctx context.Context, args ImportWalletArgs,
) (*WalletInfo, error) {
	signingWallet, err := wallet.NewWalletFromKey(wallet.NewWalletFromKeyOpts{
		Key: args.Key,
	})
	if err != nil {
		return nil, err
	}

	return s.addWallet(ctx, args.Name, signingWallet, args.Passphrase)
}

func (s *walletService) GetWalletInfo(
	ctx context.Context, name string,
) (*WalletInfo, error) {
	storedWallet, err := s.walletByName(ctx, name)
	if err != nil {
		return nil, err
	}
	info := walletInfoFromDomain(storedWallet)
	return &info, nil
}

func (s *walletService) ListWallets(ctx context.Context) ([]WalletInfo, error) {
	wallets, err := s.dbManager.WalletRepository().GetAllWallets(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(wallets, func(i, j int) bool {
		return wallets[i].CreatedAt.Before(wallets[j].CreatedAt)
	})

	infos := make([]WalletInfo, 0, len(wallets))
	for i := range wallets {
		infos = append(infos, walletInfoFromDomain(&wallets[i]))
	}
	return infos, nil
}

func (s *walletService) RevealWalletSecrets(
	ctx context.Context, name, passphrase string,
) (*WalletSecrets, error) {
	_, signingWallet, err := s.unlockWallet(ctx, name, passphrase)
	if err != nil {
		return nil, err
	}

	secrets := &WalletSecrets{}
	if !signingWallet.IsImported() {
		mnemonic, err := signingWallet.Mnemonic()
		if err != nil {
			return nil, err
		}
		secrets.Mnemonic = mnemonic
		secrets.SeedPassphrase = signingWallet.Passphrase()
	}

	if secrets.MainnetWIF, err = signingWallet.DeriveWIF(
		wallet.DeriveWIFOpts{},
	); err != nil {
		return nil, err
	}
	if secrets.TestnetWIF, err = signingWallet.DeriveWIF(
		wallet.DeriveWIFOpts{Testnet: true},
	); err != nil {
		return nil, err
	}
	if secrets.MainnetDescriptor, err = signingWallet.DeriveDescriptor(
		wallet.DeriveDescriptorOpts{},
	); err != nil {
		return nil, err
	}
	if secrets.TestnetDescriptor, err = signingWallet.DeriveDescriptor(
		wallet.DeriveDescriptorOpts{Testnet: true},
	); err != nil {
		return nil, err
	}
	return secrets, nil
}

func (s *walletService) DeriveAddress(
	ctx context.Context, args DeriveArgs,
) (string, error) {
	_, signingWallet, err := s.unlockWallet(ctx, args.Name, args.Passphrase)
	if err != nil {
		return "", err
	}
	return signingWallet.DeriveAddress(wallet.DeriveAddressOpts{
		Account: args.Account,
		Index:   args.Index,
		Testnet: args.Testnet,
		Change:  args.Change,
	})
}

func (s *walletService) DeriveDescriptor(
	ctx context.Context, args DeriveArgs,
) (string, error) {
	_, signingWallet, err := s.unlockWallet(ctx, args.Name, args.Passphrase)
	if err != nil {
		return "", err
	}
	return signingWallet.DeriveDescriptor(wallet.DeriveDescriptorOpts{
		Account: args.Account,
		Index:   args.Index,
		Testnet: args.Testnet,
	})
}

func (s *walletService) ChangePassphrase(
	ctx context.Context, name, currentPassphrase, newPassphrase string,
) error {
	storedWallet, err := s.walletByName(ctx, name)
	if err != nil {
		return err
	}

	return s.dbManager.WalletRepository().UpdateWallet(
		ctx, storedWallet.ID,
		func(w *domain.Wallet) (*domain.Wallet, error) {
			if err := w.ChangePassphrase(
				currentPassphrase, newPassphrase,
			); err != nil {
				return nil, err
			}
			return w, nil
		},
	)
}

func (s *walletService) DeleteWallet(
	ctx context.Context, name, passphrase string,
) error {
	storedWallet, err := s.walletByName(ctx, name)
	if err != nil {
		return err
	}
	if !storedWallet.IsValidPassphrase(passphrase) {
		return domain.ErrInvalidPassphrase
	}

	if err := s.dbManager.WalletRepository().DeleteWallet(
		ctx, storedWallet.ID,
	); err != nil {
		return err
	}

	log.Debugf("wallet %s deleted", name)
	return nil
}

func (s *walletService) ImportToNode(
	ctx context.Context, args ImportToNodeArgs,
) error {
	if s.nodeService == nil {
		return ErrNodeNotConfigured
	}

	descriptor, err := s.DeriveDescriptor(ctx, DeriveArgs{
		Name:       args.Name,
		Passphrase: args.Passphrase,
		Account:    args.Account,
		Index:      args.Index,
		Testnet:    args.Testnet,
	})
	if err != nil {
		return err
	}

	if err := s.nodeService.ImportDescriptor(
		ctx, descriptor, args.Name, args.Rescan,
	); err != nil {
		return err
	}

	log.Debugf("descriptor of wallet %s imported to the node", args.Name)
	return nil
}

func (s *walletService) addWallet(
	ctx context.Context,
	name string,
	signingWallet *wallet.Wallet,
	passphrase string,
) (*WalletInfo, error) {
	if len(strings.TrimSpace(name)) <= 0 {
		return nil, ErrNullWalletName
	}

	// Fail on a taken name before the costly secret encryption.
	_, err := s.dbManager.WalletRepository().GetWalletByName(
		ctx, strings.TrimSpace(name),
	)
	if err == nil {
		return nil, domain.ErrWalletAlreadyExists
	}
	if err != domain.ErrWalletNotFound {
		return nil, err
	}

	storedWallet, err := domain.NewWallet(name, signingWallet, passphrase)
	if err != nil {
		return nil, err
	}
	if err := s.dbManager.WalletRepository().AddWallet(
		ctx, storedWallet,
	); err != nil {
		return nil, err
	}

	log.Debugf("wallet %s stored with id %s", storedWallet.Name, storedWallet.ID)
	info := walletInfoFromDomain(storedWallet)
	return &info, nil
}

func (s *walletService) walletByName(
	ctx context.Context, name string,
) (*domain.Wallet, error) {
	if len(strings.TrimSpace(name)) <= 0 {
		return nil, ErrNullWalletName
	}
	return s.dbManager.WalletRepository().GetWalletByName(
		ctx, strings.TrimSpace(name),
	)
}

func (s *walletService) unlockWallet(
	ctx context.Context, name, passphrase string,
) (*domain.Wallet, *wallet.Wallet, error) {
	storedWallet, err := s.walletByName(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	signingWallet, err := storedWallet.Unlock(passphrase)
	if err != nil {
		return nil, nil, err
	}
	return storedWallet, signingWallet, nil
}
