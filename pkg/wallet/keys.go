package wallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/pocx-network/pocxwallet/pkg/address"
	"github.com/pocx-network/pocxwallet/pkg/descriptor"
	"github.com/pocx-network/pocxwallet/pkg/pocxnet"
)

// DeriveKeyPairOpts is the struct given to the DeriveKeyPair method
type DeriveKeyPairOpts struct {
	Account uint32
	Index   uint32
	Testnet bool
	Change  bool
}

func (o DeriveKeyPairOpts) validate() error {
	if o.Account > MaxHardenedValue {
		return ErrOutOfRangeAccount
	}
	if o.Index > MaxHardenedValue {
		return ErrOutOfRangeIndex
	}
	return nil
}

// DeriveKeyPair derives the key pair at the wallet's fixed scheme
// m/84'/coin'/account'/chain/index, with coin selected by the testnet
// flag and chain by the change flag. For a single-key wallet the one
// imported key pair is returned whatever the requested coordinates are.
func (w *Wallet) DeriveKeyPair(opts DeriveKeyPairOpts) (
	*btcec.PrivateKey,
	*btcec.PublicKey,
	error,
) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}
	if err := w.validate(); err != nil {
		return nil, nil, err
	}

	if w.importedKey != nil {
		return w.importedKey, w.importedKey.PubKey(), nil
	}

	seed := seedFromMnemonic(w.mnemonic, w.passphrase)
	hdNode, err := hdkeychain.NewMaster(seed, pocxnet.ParamsForNetwork(opts.Testnet))
	if err != nil {
		return nil, nil, err
	}

	path := pathForAddress(opts.Account, opts.Index, opts.Testnet, opts.Change)
	for _, step := range path {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, nil, err
		}
	}

	privateKey, err := hdNode.ECPrivKey()
	if err != nil {
		return nil, nil, err
	}
	publicKey, err := hdNode.ECPubKey()
	if err != nil {
		return nil, nil, err
	}

	return privateKey, publicKey, nil
}

// DeriveAddressOpts is the struct given to the DeriveAddress method
type DeriveAddressOpts struct {
	Account uint32
	Index   uint32
	Testnet bool
	Change  bool
}

// DeriveAddress returns the native segwit address of the key pair at the
// given coordinates. The address is a pure function of the wallet's seed
// material and the options: identical inputs always return identical
// text.
func (w *Wallet) DeriveAddress(opts DeriveAddressOpts) (string, error) {
	_, publicKey, err := w.DeriveKeyPair(DeriveKeyPairOpts(opts))
	if err != nil {
		return "", err
	}

	pubkeyHash := btcutil.Hash160(publicKey.SerializeCompressed())
	return address.Encode(pocxnet.HRP(opts.Testnet), 0, pubkeyHash)
}

// DeriveWIFOpts is the struct given to the DeriveWIF method
type DeriveWIFOpts struct {
	Account uint32
	Index   uint32
	Testnet bool
}

// DeriveWIF returns the WIF encoding of the private key at the given
// coordinates on the external chain, tagged with the network's version
// byte.
func (w *Wallet) DeriveWIF(opts DeriveWIFOpts) (string, error) {
	privateKey, _, err := w.DeriveKeyPair(DeriveKeyPairOpts{
		Account: opts.Account,
		Index:   opts.Index,
		Testnet: opts.Testnet,
	})
	if err != nil {
		return "", err
	}

	wif, err := btcutil.NewWIF(
		privateKey, pocxnet.ParamsForNetwork(opts.Testnet), true,
	)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// DerivePublicKeyHexOpts is the struct given to the DerivePublicKeyHex
// method
type DerivePublicKeyHexOpts struct {
	Account uint32
	Index   uint32
	Testnet bool
	Change  bool
}

// DerivePublicKeyHex returns the compressed public key at the given
// coordinates in hex format.
func (w *Wallet) DerivePublicKeyHex(opts DerivePublicKeyHexOpts) (string, error) {
	_, publicKey, err := w.DeriveKeyPair(DeriveKeyPairOpts(opts))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(publicKey.SerializeCompressed()), nil
}

// DeriveDescriptorOpts is the struct given to the DeriveDescriptor method
type DeriveDescriptorOpts struct {
	Testnet bool
	Account uint32
	Index   uint32
}

// DeriveDescriptor returns the wpkh() descriptor of the key at the given
// coordinates, completed with its checksum. The output is handed verbatim
// to the node's wallet-import RPC by the caller.
func (w *Wallet) DeriveDescriptor(opts DeriveDescriptorOpts) (string, error) {
	wif, err := w.DeriveWIF(DeriveWIFOpts{
		Account: opts.Account,
		Index:   opts.Index,
		Testnet: opts.Testnet,
	})
	if err != nil {
		return "", err
	}
	return descriptor.Wpkh(wif), nil
}
