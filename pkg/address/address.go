// Package address encodes and decodes PoCX native segwit addresses.
//
// The text format is bech32 (BIP173) with the network's human-readable
// prefix. Only witness version 0 with a 20 byte program is supported;
// the checksum constants of this encoding are specific to version 0 and
// must not be reused for future witness versions.
package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pocx-network/pocxwallet/pkg/pocxnet"
)

// WitnessV0ProgramLen is the byte length of the only witness program
// this encoder accepts, the hash160 of a compressed public key.
const WitnessV0ProgramLen = 20

var (
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("address is not a valid bech32 string")
	// ErrUnsupportedWitnessVersion ...
	ErrUnsupportedWitnessVersion = errors.New("witness version must be 0")
	// ErrInvalidProgramLength ...
	ErrInvalidProgramLength = fmt.Errorf(
		"witness program must be %d bytes", WitnessV0ProgramLen,
	)
	// ErrWrongNetwork ...
	ErrWrongNetwork = errors.New("address prefix does not match the network")
)

// Encode returns the bech32 address for the given witness version and
// program under the given human-readable prefix. The output is always
// lowercase.
func Encode(hrp string, witnessVer byte, program []byte) (string, error) {
	if witnessVer != 0 {
		return "", ErrUnsupportedWitnessVersion
	}
	if len(program) != WitnessV0ProgramLen {
		return "", ErrInvalidProgramLength
	}

	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to regroup witness program: %w", err)
	}

	combined := make([]byte, 0, len(converted)+1)
	combined = append(combined, witnessVer)
	combined = append(combined, converted...)

	addr, err := bech32.Encode(hrp, combined)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return addr, nil
}

// Decode parses a bech32 address and returns its human-readable prefix,
// witness version and witness program. Checksum, charset and mixed-case
// violations are reported as ErrInvalidAddress; a version other than 0
// and a program length other than 20 bytes are reported as their own
// conditions so callers can tell corruption from unsupported formats.
func Decode(addr string) (string, byte, []byte, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(data) < 1 {
		return "", 0, nil, fmt.Errorf("%w: empty data section", ErrInvalidAddress)
	}

	witnessVer := data[0]
	if witnessVer != 0 {
		return "", 0, nil, ErrUnsupportedWitnessVersion
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(program) != WitnessV0ProgramLen {
		return "", 0, nil, ErrInvalidProgramLength
	}

	return hrp, witnessVer, program, nil
}

// DecodeForNetwork decodes an address and checks that its prefix belongs
// to the requested network.
func DecodeForNetwork(addr string, testnet bool) (byte, []byte, error) {
	hrp, witnessVer, program, err := Decode(addr)
	if err != nil {
		return 0, nil, err
	}
	if hrp != pocxnet.HRP(testnet) {
		return 0, nil, ErrWrongNetwork
	}
	return witnessVer, program, nil
}
