package application

import "errors"

var (
	// ErrNodeNotConfigured is thrown when a node operation is requested
	// without a node RPC endpoint in the config
	ErrNodeNotConfigured = errors.New(
		"no node rpc endpoint configured",
	)
	// ErrNullWalletName ...
	ErrNullWalletName = errors.New("wallet name must not be null")
	// ErrSaveNeedsPassphrase is thrown when a vanity search should persist
	// its result but no encryption passphrase was given
	ErrSaveNeedsPassphrase = errors.New(
		"saving the result requires an encryption passphrase",
	)
)
