package wallet

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/pocx-network/pocxwallet/pkg/pocxnet"
)

const (
	// MaxHardenedValue is the highest value accepted for the account and
	// index levels of the derivation scheme. Values above it cannot be
	// hardened without overflowing uint32.
	MaxHardenedValue = hdkeychain.HardenedKeyStart - 1

	purpose       = 84
	externalChain = 0
	internalChain = 1
)

// DerivationPath is the internal representation of a hierarchical
// deterministic wallet path
type DerivationPath []uint32

func (path DerivationPath) String() string {
	if len(path) == 0 {
		return "m"
	}

	result := strings.Builder{}
	result.WriteString("m")
	for _, component := range path {
		result.WriteString("/")
		if component >= hdkeychain.HardenedKeyStart {
			result.WriteString(fmt.Sprintf("%d'", component-hdkeychain.HardenedKeyStart))
		} else {
			result.WriteString(fmt.Sprintf("%d", component))
		}
	}
	return result.String()
}

// pathForAddress returns the fixed m/84'/coin'/account'/chain/index path.
// The coin level comes from the network params so that mainnet and
// testnet wallets never collide on the same child keys.
func pathForAddress(account, index uint32, testnet, change bool) DerivationPath {
	coin := pocxnet.ParamsForNetwork(testnet).HDCoinType
	chain := uint32(externalChain)
	if change {
		chain = internalChain
	}
	return DerivationPath{
		hdkeychain.HardenedKeyStart + purpose,
		hdkeychain.HardenedKeyStart + coin,
		hdkeychain.HardenedKeyStart + account,
		chain,
		index,
	}
}
