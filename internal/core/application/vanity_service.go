package application

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
	"github.com/pocx-network/pocxwallet/internal/core/ports"
	"github.com/pocx-network/pocxwallet/pkg/vanity"
	"github.com/pocx-network/pocxwallet/pkg/wallet"
)

// VanityService runs vanity searches and optionally persists the
// winning wallet like any other created wallet.
type VanityService interface {
	// Search runs the engine until a match or cancellation. With SaveAs
	// set the found wallet is stored encrypted under that name.
	Search(
		ctx context.Context, args VanitySearchArgs,
	) (*VanitySearchResult, error)
}

// VanitySearchArgs groups the parameters of VanityService.Search
type VanitySearchArgs struct {
	Pattern     string
	Testnet     bool
	Accelerated bool
	SaveAs      string
	Passphrase  string
	OnProgress  func(vanity.Progress)
}

// VanitySearchResult is a vanity engine result, extended with the
// stored wallet's public view when the caller asked to persist it.
type VanitySearchResult struct {
	vanity.Result
	SavedWallet *WalletInfo
}

type vanityService struct {
	engine    vanity.Service
	dbManager ports.DbManager
}

// NewVanityService returns a VanityService running searches on the given
// engine and persisting results through the given repositories.
func NewVanityService(
	engine vanity.Service, dbManager ports.DbManager,
) VanityService {
	return &vanityService{
		engine:    engine,
		dbManager: dbManager,
	}
}

func (s *vanityService) Search(
	ctx context.Context, args VanitySearchArgs,
) (*VanitySearchResult, error) {
	saveAs := strings.TrimSpace(args.SaveAs)
	if len(saveAs) > 0 {
		if len(args.Passphrase) <= 0 {
			return nil, ErrSaveNeedsPassphrase
		}
		// Fail on a taken name before burning cpu time on the search.
		_, err := s.dbManager.WalletRepository().GetWalletByName(ctx, saveAs)
		if err == nil {
			return nil, domain.ErrWalletAlreadyExists
		}
		if err != domain.ErrWalletNotFound {
			return nil, err
		}
	}

	result, err := s.engine.Search(ctx, vanity.SearchOpts{
		Pattern:     args.Pattern,
		Testnet:     args.Testnet,
		Accelerated: args.Accelerated,
		OnProgress:  args.OnProgress,
	})
	if err != nil {
		return nil, err
	}

	searchResult := &VanitySearchResult{Result: *result}
	if len(saveAs) <= 0 {
		return searchResult, nil
	}

	signingWallet, err := wallet.NewWalletFromMnemonic(
		wallet.NewWalletFromMnemonicOpts{Mnemonic: result.Mnemonic},
	)
	if err != nil {
		return nil, err
	}
	storedWallet, err := domain.NewWallet(saveAs, signingWallet, args.Passphrase)
	if err != nil {
		return nil, err
	}
	if err := s.dbManager.WalletRepository().AddWallet(
		ctx, storedWallet,
	); err != nil {
		return nil, err
	}

	log.Debugf("vanity wallet stored as %s", saveAs)
	info := walletInfoFromDomain(storedWallet)
	searchResult.SavedWallet = &info
	return searchResult, nil
}
