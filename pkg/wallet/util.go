package wallet

import (
	"encoding/hex"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

func generateMnemonic(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func entropyBitsForWordCount(wordCount int) int {
	// Every 3 mnemonic words encode 32 bits of entropy.
	return wordCount / 3 * 32
}

// normalizeMnemonic collapses any run of whitespace to single spaces so
// that pasted phrases with tabs, newlines or double spaces are accepted.
func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

func isMnemonicValid(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

func seedFromMnemonic(mnemonic, passphrase string) []byte {
	return bip39.NewSeed(mnemonic, passphrase)
}

func isPrivateKeyHex(key string) bool {
	key = trimHexPrefix(strings.TrimSpace(key))
	if len(key) != 64 {
		return false
	}
	_, err := hex.DecodeString(key)
	return err == nil
}

func trimHexPrefix(key string) string {
	if strings.HasPrefix(key, "0x") || strings.HasPrefix(key, "0X") {
		return key[2:]
	}
	return key
}
