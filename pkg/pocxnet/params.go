package pocxnet

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// Human-readable prefixes of native segwit PoCX addresses.
const (
	MainNetHRP = "pocx"
	TestNetHRP = "tpocx"
)

// Bech32Charset is the alphabet the data part of an address is spelled
// in. Exposed for callers that reason about which characters an address
// can ever contain.
const Bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Magic bytes identifying PoCX p2p messages.
const (
	MainNet wire.BitcoinNet = 0xd3c4b8f1
	TestNet wire.BitcoinNet = 0x0bd6a5f4
)

// MainNetParams defines the parameters of the production PoCX network.
// PoCX keeps the base58 version bytes and extended key magics of the
// chain it was forked from, so WIF keys and xprv/xpub strings look
// familiar; only the bech32 prefix and the p2p magics diverge.
var MainNetParams = chaincfg.Params{
	Name:        "mainnet",
	Net:         MainNet,
	DefaultPort: "9333",

	// Human-readable part for bech32 encoded segwit addresses.
	Bech32HRPSegwit: MainNetHRP,

	// Address encoding magics
	PubKeyHashAddrID:        0x00,
	ScriptHashAddrID:        0x05,
	PrivateKeyID:            0x80,
	WitnessPubKeyHashAddrID: 0x06,
	WitnessScriptHashAddrID: 0x0a,

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 0,
}

// TestNetParams defines the parameters of the PoCX test network.
var TestNetParams = chaincfg.Params{
	Name:        "testnet3",
	Net:         TestNet,
	DefaultPort: "19333",

	Bech32HRPSegwit: TestNetHRP,

	// Address encoding magics
	PubKeyHashAddrID:        0x6f,
	ScriptHashAddrID:        0xc4,
	PrivateKeyID:            0xef,
	WitnessPubKeyHashAddrID: 0x03,
	WitnessScriptHashAddrID: 0x28,

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

	HDCoinType: 1,
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
}

func mustRegister(params *chaincfg.Params) {
	if err := chaincfg.Register(params); err != nil {
		panic("failed to register network params: " + err.Error())
	}
}

// ParamsForNetwork returns the chain parameters of the requested network.
func ParamsForNetwork(testnet bool) *chaincfg.Params {
	if testnet {
		return &TestNetParams
	}
	return &MainNetParams
}

// HRP returns the bech32 human-readable prefix of the requested network.
func HRP(testnet bool) string {
	if testnet {
		return TestNetHRP
	}
	return MainNetHRP
}
