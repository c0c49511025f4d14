package wallet_test

import (
	"strings"
	"testing"

	"github.com/pocx-network/pocxwallet/pkg/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference BIP84 seed material, used across the package tests.
const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"
	testWIF = "KyZpNDKnfs94vbP8LsttmfW9aw4QV5V6MNpQNZomdsh7tgRYD3rt"

	// Compressed public key of the scalar 1, the curve generator itself.
	generatorPubKey = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	scalarOneHex    = "0000000000000000000000000000000000000000000000000000000000000001"
)

func TestNewWallet(t *testing.T) {
	t.Parallel()

	wordCounts := []int{12, 15, 18, 21, 24}

	for _, wordCount := range wordCounts {
		w, err := wallet.NewWallet(wallet.NewWalletOpts{
			WordCount: wordCount,
		})
		require.NoError(t, err)
		require.NotNil(t, w)

		mnemonic, err := w.Mnemonic()
		require.NoError(t, err)
		require.Len(t, strings.Fields(mnemonic), wordCount)
		assert.False(t, w.IsImported())
	}
}

func TestNewWalletGeneratesFreshEntropy(t *testing.T) {
	t.Parallel()

	opts := wallet.NewWalletOpts{WordCount: 12}
	first, err := wallet.NewWallet(opts)
	require.NoError(t, err)
	second, err := wallet.NewWallet(opts)
	require.NoError(t, err)

	firstMnemonic, err := first.Mnemonic()
	require.NoError(t, err)
	secondMnemonic, err := second.Mnemonic()
	require.NoError(t, err)
	require.NotEqual(t, firstMnemonic, secondMnemonic)
}

func TestFailingNewWallet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts wallet.NewWalletOpts
		err  error
	}{
		{
			name: "zero word count",
			opts: wallet.NewWalletOpts{WordCount: 0},
			err:  wallet.ErrInvalidWordCount,
		},
		{
			name: "word count below range",
			opts: wallet.NewWalletOpts{WordCount: 11},
			err:  wallet.ErrInvalidWordCount,
		},
		{
			name: "word count between valid steps",
			opts: wallet.NewWalletOpts{WordCount: 13},
			err:  wallet.ErrInvalidWordCount,
		},
		{
			name: "word count above range",
			opts: wallet.NewWalletOpts{WordCount: 27},
			err:  wallet.ErrInvalidWordCount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := wallet.NewWallet(tt.opts)
			require.Nil(t, w)
			require.EqualError(t, err, tt.err.Error())
		})
	}
}

func TestNewWalletFromMnemonic(t *testing.T) {
	t.Parallel()

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: testMnemonic,
	})
	require.NoError(t, err)
	require.NotNil(t, w)

	mnemonic, err := w.Mnemonic()
	require.NoError(t, err)
	require.Equal(t, testMnemonic, mnemonic)
	assert.Empty(t, w.Passphrase())
}

func TestNewWalletFromMnemonicToleratesWhitespace(t *testing.T) {
	t.Parallel()

	messy := "  " + strings.Replace(testMnemonic, " ", "\t ", 3)
	messy = strings.Replace(messy, " ", "\n", 1) + "  "

	clean, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: testMnemonic,
	})
	require.NoError(t, err)
	restored, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: messy,
	})
	require.NoError(t, err)

	cleanAddr, err := clean.DeriveAddress(wallet.DeriveAddressOpts{})
	require.NoError(t, err)
	restoredAddr, err := restored.DeriveAddress(wallet.DeriveAddressOpts{})
	require.NoError(t, err)
	require.Equal(t, cleanAddr, restoredAddr)

	mnemonic, err := restored.Mnemonic()
	require.NoError(t, err)
	require.Equal(t, testMnemonic, mnemonic)
}

func TestFailingNewWalletFromMnemonic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts wallet.NewWalletFromMnemonicOpts
		err  error
	}{
		{
			name: "empty mnemonic",
			opts: wallet.NewWalletFromMnemonicOpts{Mnemonic: ""},
			err:  wallet.ErrNullMnemonic,
		},
		{
			name: "whitespace only mnemonic",
			opts: wallet.NewWalletFromMnemonicOpts{Mnemonic: " \t\n "},
			err:  wallet.ErrNullMnemonic,
		},
		{
			name: "unknown words",
			opts: wallet.NewWalletFromMnemonicOpts{
				Mnemonic: "glorp abandon abandon abandon abandon abandon " +
					"abandon abandon abandon abandon abandon about",
			},
			err: wallet.ErrInvalidMnemonic,
		},
		{
			name: "failing embedded checksum",
			opts: wallet.NewWalletFromMnemonicOpts{
				Mnemonic: strings.TrimSpace(
					strings.Repeat("abandon ", 12),
				),
			},
			err: wallet.ErrInvalidMnemonic,
		},
		{
			name: "unsupported word count",
			opts: wallet.NewWalletFromMnemonicOpts{
				Mnemonic: "abandon abandon about",
			},
			err: wallet.ErrInvalidMnemonic,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := wallet.NewWalletFromMnemonic(tt.opts)
			require.Nil(t, w)
			require.EqualError(t, err, tt.err.Error())
		})
	}
}

func TestPassphraseHardensTheSeed(t *testing.T) {
	t.Parallel()

	bare, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: testMnemonic,
	})
	require.NoError(t, err)
	hardened, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic:   testMnemonic,
		Passphrase: "TREZOR",
	})
	require.NoError(t, err)

	bareAddr, err := bare.DeriveAddress(wallet.DeriveAddressOpts{})
	require.NoError(t, err)
	hardenedAddr, err := hardened.DeriveAddress(wallet.DeriveAddressOpts{})
	require.NoError(t, err)

	// Same phrase, different passphrase: two unrelated wallets.
	require.NotEqual(t, bareAddr, hardenedAddr)
	require.Equal(t, "TREZOR", hardened.Passphrase())
}

func TestNewWalletFromPrivateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{"raw hex", scalarOneHex},
		{"0x prefixed hex", "0x" + scalarOneHex},
		{"surrounded by whitespace", " " + scalarOneHex + "\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := wallet.NewWalletFromPrivateKey(
				wallet.NewWalletFromPrivateKeyOpts{PrivateKeyHex: tt.key},
			)
			require.NoError(t, err)
			require.True(t, w.IsImported())

			pubkey, err := w.DerivePublicKeyHex(wallet.DerivePublicKeyHexOpts{})
			require.NoError(t, err)
			require.Equal(t, generatorPubKey, pubkey)

			_, err = w.Mnemonic()
			require.EqualError(t, err, wallet.ErrNoMnemonic.Error())
		})
	}
}

func TestNewWalletFromWIF(t *testing.T) {
	t.Parallel()

	w, err := wallet.NewWalletFromWIF(wallet.NewWalletFromWIFOpts{
		WIF: testWIF,
	})
	require.NoError(t, err)
	require.True(t, w.IsImported())

	// Re-encoding the imported key must reproduce the source WIF.
	wif, err := w.DeriveWIF(wallet.DeriveWIFOpts{})
	require.NoError(t, err)
	require.Equal(t, testWIF, wif)
}

func TestNewWalletFromKeyDetectsFormat(t *testing.T) {
	t.Parallel()

	fromHex, err := wallet.NewWalletFromKey(wallet.NewWalletFromKeyOpts{
		Key: "0x" + scalarOneHex,
	})
	require.NoError(t, err)
	fromWIF, err := wallet.NewWalletFromKey(wallet.NewWalletFromKeyOpts{
		Key: testWIF,
	})
	require.NoError(t, err)

	hexPubkey, err := fromHex.DerivePublicKeyHex(wallet.DerivePublicKeyHexOpts{})
	require.NoError(t, err)
	require.Equal(t, generatorPubKey, hexPubkey)

	wif, err := fromWIF.DeriveWIF(wallet.DeriveWIFOpts{})
	require.NoError(t, err)
	require.Equal(t, testWIF, wif)
}

func TestFailingNewWalletFromKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts wallet.NewWalletFromKeyOpts
		err  error
	}{
		{
			name: "empty key",
			opts: wallet.NewWalletFromKeyOpts{Key: ""},
			err:  wallet.ErrNullKey,
		},
		{
			name: "zero scalar",
			opts: wallet.NewWalletFromKeyOpts{
				Key: strings.Repeat("00", 32),
			},
			err: wallet.ErrInvalidKeyFormat,
		},
		{
			name: "truncated hex",
			opts: wallet.NewWalletFromKeyOpts{
				Key: scalarOneHex[:62],
			},
			err: wallet.ErrInvalidKeyFormat,
		},
		{
			name: "mangled wif",
			opts: wallet.NewWalletFromKeyOpts{
				Key: testWIF[:len(testWIF)-1] + "!",
			},
			err: wallet.ErrInvalidKeyFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := wallet.NewWalletFromKey(tt.opts)
			require.Nil(t, w)
			require.EqualError(t, err, tt.err.Error())
		})
	}
}
