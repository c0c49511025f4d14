package wallet

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrNullKey ...
	ErrNullKey = errors.New("key must not be null")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("text to encrypt must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher to decrypt must not be null")

	// ErrInvalidWordCount ...
	ErrInvalidWordCount = errors.New(
		"word count must be one of 12, 15, 18, 21, 24",
	)
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New(
		"mnemonic contains unknown words or its checksum does not verify",
	)
	// ErrInvalidKeyFormat ...
	ErrInvalidKeyFormat = errors.New(
		"key is neither a 32 byte hex scalar nor a valid WIF string",
	)
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher must be in base64 format")
	// ErrWrongPassphrase ...
	ErrWrongPassphrase = errors.New(
		"passphrase does not decrypt the cypher text",
	)

	// ErrNoMnemonic ...
	ErrNoMnemonic = errors.New(
		"wallet was imported from a single key and has no mnemonic",
	)

	// ErrOutOfRangeAccount ...
	ErrOutOfRangeAccount = errors.New(
		"account must not exceed the max hardened value",
	)
	// ErrOutOfRangeIndex ...
	ErrOutOfRangeIndex = errors.New(
		"index must not exceed the max hardened value",
	)
)

// Wallet holds the seed material of a PoCX wallet: either a mnemonic with
// an optional passphrase, from which every key pair of the fixed
// derivation scheme is re-derived on demand, or a single imported private
// key with no derivation tree at all. Derived keys are never cached.
type Wallet struct {
	mnemonic    string
	passphrase  string
	importedKey *btcec.PrivateKey
}

// NewWalletOpts is the struct given to the NewWallet method
type NewWalletOpts struct {
	WordCount  int
	Passphrase string
}

func (o NewWalletOpts) validate() error {
	switch o.WordCount {
	case 12, 15, 18, 21, 24:
		return nil
	default:
		return ErrInvalidWordCount
	}
}

// NewWallet creates a new wallet with a fresh mnemonic of the requested
// word count and an optional passphrase hardening the seed.
func NewWallet(opts NewWalletOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	mnemonic, err := generateMnemonic(entropyBitsForWordCount(opts.WordCount))
	if err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic:   mnemonic,
		passphrase: opts.Passphrase,
	}, nil
}

// NewWalletFromMnemonicOpts is the struct given to the
// NewWalletFromMnemonic method
type NewWalletFromMnemonicOpts struct {
	Mnemonic   string
	Passphrase string
}

func (o NewWalletFromMnemonicOpts) validate() error {
	mnemonic := normalizeMnemonic(o.Mnemonic)
	if len(mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NewWalletFromMnemonic restores a wallet from an existing mnemonic.
// Surrounding and internal whitespace is tolerated; the phrase itself
// must pass the wordlist and embedded checksum validation. Two different
// passphrases silently yield two unrelated wallets.
func NewWalletFromMnemonic(opts NewWalletFromMnemonicOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic:   normalizeMnemonic(opts.Mnemonic),
		passphrase: opts.Passphrase,
	}, nil
}

// NewWalletFromPrivateKeyOpts is the struct given to the
// NewWalletFromPrivateKey method
type NewWalletFromPrivateKeyOpts struct {
	PrivateKeyHex string
}

func (o NewWalletFromPrivateKeyOpts) validate() error {
	if len(o.PrivateKeyHex) <= 0 {
		return ErrNullKey
	}
	if !isPrivateKeyHex(o.PrivateKeyHex) {
		return ErrInvalidKeyFormat
	}
	return nil
}

// NewWalletFromPrivateKey imports a single-key wallet from a 64 hex
// character private scalar, optionally 0x-prefixed.
func NewWalletFromPrivateKey(opts NewWalletFromPrivateKeyOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	buf, _ := hex.DecodeString(trimHexPrefix(strings.TrimSpace(opts.PrivateKeyHex)))
	privateKey, _ := btcec.PrivKeyFromBytes(buf)
	if privateKey.Key.IsZero() {
		return nil, ErrInvalidKeyFormat
	}

	return &Wallet{importedKey: privateKey}, nil
}

// NewWalletFromWIFOpts is the struct given to the NewWalletFromWIF method
type NewWalletFromWIFOpts struct {
	WIF string
}

func (o NewWalletFromWIFOpts) validate() error {
	if len(o.WIF) <= 0 {
		return ErrNullKey
	}
	return nil
}

// NewWalletFromWIF imports a single-key wallet from a network-prefixed
// WIF string.
func NewWalletFromWIF(opts NewWalletFromWIFOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	wif, err := btcutil.DecodeWIF(strings.TrimSpace(opts.WIF))
	if err != nil {
		return nil, ErrInvalidKeyFormat
	}

	return &Wallet{importedKey: wif.PrivKey}, nil
}

// NewWalletFromKeyOpts is the struct given to the NewWalletFromKey method
type NewWalletFromKeyOpts struct {
	Key string
}

func (o NewWalletFromKeyOpts) validate() error {
	if len(strings.TrimSpace(o.Key)) <= 0 {
		return ErrNullKey
	}
	return nil
}

// NewWalletFromKey imports a single-key wallet from either supported key
// format. The format is detected by length and alphabet first: a 64 hex
// character string (optionally 0x-prefixed) is treated as a raw scalar,
// anything else goes through WIF parsing.
func NewWalletFromKey(opts NewWalletFromKeyOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(opts.Key)
	if isPrivateKeyHex(key) {
		return NewWalletFromPrivateKey(NewWalletFromPrivateKeyOpts{
			PrivateKeyHex: key,
		})
	}
	return NewWalletFromWIF(NewWalletFromWIFOpts{WIF: key})
}

func (w *Wallet) validate() error {
	if w.importedKey != nil {
		return nil
	}
	if len(w.mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(w.mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// Mnemonic is the getter for the wallet's mnemonic. Imported single-key
// wallets have none.
func (w *Wallet) Mnemonic() (string, error) {
	if err := w.validate(); err != nil {
		return "", err
	}
	if w.importedKey != nil {
		return "", ErrNoMnemonic
	}
	return w.mnemonic, nil
}

// Passphrase is the getter for the wallet's seed passphrase.
func (w *Wallet) Passphrase() string {
	return w.passphrase
}

// IsImported returns whether the wallet was imported from a single key
// and therefore has no derivation tree.
func (w *Wallet) IsImported() bool {
	return w.importedKey != nil
}
