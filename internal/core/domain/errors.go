package domain

import "errors"

var (
	// ErrWalletNotFound is thrown when the requested wallet is not in the repository
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletAlreadyExists is thrown when adding a wallet whose name is already taken
	ErrWalletAlreadyExists = errors.New("a wallet with the same name already exists")
	// ErrInvalidPassphrase ...
	ErrInvalidPassphrase = errors.New("passphrase is not valid")
	// ErrNullNameOrPassphrase ...
	ErrNullNameOrPassphrase = errors.New("name and/or passphrase must not be null")
	// ErrNullWallet ...
	ErrNullWallet = errors.New("wallet must not be null")
)
