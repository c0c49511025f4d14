package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
	"github.com/pocx-network/pocxwallet/pkg/wallet"
)

// Wallet types persisted in the repository.
const (
	WalletTypeHD       = "hd"
	WalletTypeImported = "imported"
)

// Wallet is the entity persisted for every wallet the tool manages. The
// seed material never touches the database in plain text: it is stored
// as the encrypted secret, while the first external addresses of both
// networks are kept readable for listing purposes.
type Wallet struct {
	ID              uuid.UUID
	Name            string
	Type            string
	EncryptedSecret string
	PassphraseHash  []byte
	MainnetAddress  string
	TestnetAddress  string
	CreatedAt       time.Time
}

// walletSecret is the envelope serialized and encrypted into
// Wallet.EncryptedSecret.
type walletSecret struct {
	Mnemonic   string `json:"mnemonic,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
	WIF        string `json:"wif,omitempty"`
}

// NewWallet encrypts the signing wallet's seed material with the
// unlocking passphrase and returns a new Wallet entity holding the
// cypher text, the passphrase hash and the first external address of
// each network.
func NewWallet(
	name string, signingWallet *wallet.Wallet, passphrase string,
) (*Wallet, error) {
	if len(strings.TrimSpace(name)) <= 0 || len(passphrase) <= 0 {
		return nil, ErrNullNameOrPassphrase
	}
	if signingWallet == nil {
		return nil, ErrNullWallet
	}

	mainnetAddress, err := signingWallet.DeriveAddress(wallet.DeriveAddressOpts{})
	if err != nil {
		return nil, err
	}
	testnetAddress, err := signingWallet.DeriveAddress(wallet.DeriveAddressOpts{
		Testnet: true,
	})
	if err != nil {
		return nil, err
	}

	secret := walletSecret{}
	walletType := WalletTypeHD
	if signingWallet.IsImported() {
		walletType = WalletTypeImported
		wif, err := signingWallet.DeriveWIF(wallet.DeriveWIFOpts{})
		if err != nil {
			return nil, err
		}
		secret.WIF = wif
	} else {
		mnemonic, err := signingWallet.Mnemonic()
		if err != nil {
			return nil, err
		}
		secret.Mnemonic = mnemonic
		secret.Passphrase = signingWallet.Passphrase()
	}

	plainSecret, err := json.Marshal(secret)
	if err != nil {
		return nil, err
	}
	encryptedSecret, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  string(plainSecret),
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, err
	}

	return &Wallet{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(name),
		Type:            walletType,
		EncryptedSecret: encryptedSecret,
		PassphraseHash:  btcutil.Hash160([]byte(passphrase)),
		MainnetAddress:  mainnetAddress,
		TestnetAddress:  testnetAddress,
		CreatedAt:       time.Now(),
	}, nil
}

// IsValidPassphrase returns whether the given passphrase matches the one
// the wallet's secret was encrypted with.
func (w *Wallet) IsValidPassphrase(passphrase string) bool {
	return bytes.Equal(w.PassphraseHash, btcutil.Hash160([]byte(passphrase)))
}

// IsImported returns whether the wallet was created from a single
// imported key instead of a mnemonic.
func (w *Wallet) IsImported() bool {
	return w.Type == WalletTypeImported
}

// Unlock decrypts the wallet's secret and rebuilds the signing wallet
// from it.
func (w *Wallet) Unlock(passphrase string) (*wallet.Wallet, error) {
	if !w.IsValidPassphrase(passphrase) {
		return nil, ErrInvalidPassphrase
	}

	plainSecret, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: w.EncryptedSecret,
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, err
	}

	secret := walletSecret{}
	if err := json.Unmarshal([]byte(plainSecret), &secret); err != nil {
		return nil, err
	}

	if len(secret.WIF) > 0 {
		return wallet.NewWalletFromWIF(wallet.NewWalletFromWIFOpts{
			WIF: secret.WIF,
		})
	}
	return wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic:   secret.Mnemonic,
		Passphrase: secret.Passphrase,
	})
}

// ChangePassphrase re-encrypts the wallet's secret under a new
// passphrase. The current one must be provided and valid.
func (w *Wallet) ChangePassphrase(currentPassphrase, newPassphrase string) error {
	if len(newPassphrase) <= 0 {
		return ErrNullNameOrPassphrase
	}
	if !w.IsValidPassphrase(currentPassphrase) {
		return ErrInvalidPassphrase
	}

	plainSecret, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: w.EncryptedSecret,
		Passphrase: currentPassphrase,
	})
	if err != nil {
		return err
	}
	encryptedSecret, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  plainSecret,
		Passphrase: newPassphrase,
	})
	if err != nil {
		return err
	}

	w.EncryptedSecret = encryptedSecret
	w.PassphraseHash = btcutil.Hash160([]byte(newPassphrase))
	return nil
}
